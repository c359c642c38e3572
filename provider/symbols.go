// SPDX-License-Identifier: MIT

package provider

import (
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/modelinspector/aggregation"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/view"
)

// Symbols is the drill-down of one equation symbol against one variable
// symbol: one row per equation entry, one column per variable entry.
type Symbols struct {
	base
	present  []bool // row-major; false for cells without a coefficient
	rowStart []int  // per row: position of the first in-range entry in the sparse row
	special  model.SpecialValues
}

func (p *Symbols) clone(newViewID int) Provider {
	return &Symbols{
		base:     p.cloneBase(newViewID),
		present:  slices.Clone(p.present),
		rowStart: slices.Clone(p.rowStart),
		special:  p.special,
	}
}

// Data returns the coefficient at (row, col); cells without one are invalid.
func (p *Symbols) Data(row, col int) Value {
	if !p.inRange(row, col) || !p.present[row*p.buf.Cols()+col] {
		return Value{}
	}

	return NumberValue(p.buf.Get(row, col), p.special)
}

// RowStart returns the offset of row's first in-range entry within its
// sparse Jacobian row, -1 when row is out of range.
func (p *Symbols) RowStart(row int) int {
	if row < 0 || row >= len(p.rowStart) {
		return -1
	}

	return p.rowStart[row]
}

// load extracts the dense sub-block.
//
// Implementation:
//   - Stage 1: resolve the single checked pair; anything else is an empty view.
//   - Stage 2: per equation entry, binary-search the variable range in the
//     sorted sparse row and copy the entries up to the range end.
//
// Complexity:
//   - Time O(R log nnz_row + nnz_block + R*C) for the zeroed buffer.
func (p *Symbols) load(src *source) error {
	p.special = src.special
	eq, vr, err := selectedPair(p.cfg, src)
	if err != nil {
		return err
	}
	if eq == nil {
		p.alloc(0, 0)
		return nil
	}

	R, C := eq.Entries, vr.Entries
	p.alloc(R, C)
	p.present = make([]bool, R*C)
	p.rowStart = make([]int, R)
	rowNNZ, colNNZ := make([]int, R), make([]int, C)
	abs := p.cfg.UseAbsoluteValues
	w := &writer{buf: p.buf}
	var rt rangeTracker

	for k := 0; k < R; k++ {
		r := src.jac.Row(eq.FirstSection + k)
		start, end := r.Span(vr.FirstSection, vr.LastSection)
		p.rowStart[k] = start
		rowNNZ[k] = end - start
		cols, data := r.ColIdx(), r.Data()
		for n := start; n < end; n++ {
			c, v := cols[n]-vr.FirstSection, data[n]
			if abs {
				v = math.Abs(v)
			}
			w.set(k, c, v)
			p.present[k*C+c] = true
			colNNZ[c]++
			if src.special.IsRegular(v) {
				rt.add(v)
			}
		}
	}
	if w.err != nil {
		return providerErrorf("Symbols.load", p.cfg.ID, w.err)
	}
	p.lo, p.hi, p.hasRange = rt.lo, rt.hi, rt.ok

	p.rows = sectionHeader(eq, rowNNZ)
	p.cols = sectionHeader(vr, colNNZ)

	return nil
}

// selectedPair resolves the view's equation and variable symbol. A view
// without exactly one of each yields nil symbols and no error.
func selectedPair(cfg *view.Config, src *source) (eq, vr *model.Symbol, err error) {
	e, v, ok := cfg.Symbol()
	if !ok {
		return nil, nil, nil
	}
	if e < 0 || e >= len(src.equations) || v < 0 || v >= len(src.variables) {
		return nil, nil, providerErrorf("load", cfg.ID, ErrSymbolIndex)
	}

	return src.equations[e], src.variables[v], nil
}

// sectionHeader labels one logical index per section of s.
func sectionHeader(s *model.Symbol, entries []int) header {
	h := header{
		plain:   make([]string, 0, s.Entries),
		labels:  make([][]string, 0, s.Entries),
		entries: entries,
	}
	for sec := s.FirstSection; sec <= s.LastSection; sec++ {
		h.plain = append(h.plain, s.Label(sec))
		h.labels = append(h.labels, slices.Clone(s.SectionLabels[sec]))
	}

	return h
}

// ---------- Aggregated ----------

// Aggregated is a Symbols view whose rows and columns are groups of entries
// united by an Aggregator; each cell reduces the coefficients of its group
// block with the view's aggregation type.
type Aggregated struct {
	base
	present []bool
	rowSecs [][]int // absolute equation sections per row
	colSecs [][]int // absolute variable sections per column
	special model.SpecialValues
}

func (p *Aggregated) clone(newViewID int) Provider {
	return &Aggregated{
		base:    p.cloneBase(newViewID),
		present: slices.Clone(p.present),
		rowSecs: cloneGroups(p.rowSecs),
		colSecs: cloneGroups(p.colSecs),
		special: p.special,
	}
}

// Data returns the reduced value of group block (row, col), invalid when the
// block has no coefficient.
func (p *Aggregated) Data(row, col int) Value {
	if !p.inRange(row, col) || !p.present[row*p.buf.Cols()+col] {
		return Value{}
	}

	return NumberValue(p.buf.Get(row, col), p.special)
}

// Groups returns the absolute sections united into logical index i.
func (p *Aggregated) Groups(o view.Orientation, i int) []int {
	g := p.colSecs
	if o == view.Vertical {
		g = p.rowSecs
	}
	if i < 0 || i >= len(g) {
		return nil
	}

	return slices.Clone(g[i])
}

// load aggregates both symbols, then reduces every group block.
//
// Implementation:
//   - Stage 1: run the aggregator for the equation and the variable symbol
//     with the view's label filter; items missing from the view are created
//     with no dimension checked.
//   - Stage 2: map every variable section to its column group.
//   - Stage 3: per row group, collect the in-range coefficients of all its
//     sections into per-column buckets and reduce each bucket.
//
// Count counts every stored coefficient; the other types reduce regular
// values only, so sentinels never reach a sum or an extremum.
func (p *Aggregated) load(src *source) error {
	p.special = src.special
	eq, vr, err := selectedPair(p.cfg, src)
	if err != nil {
		return err
	}
	if eq == nil {
		p.alloc(0, 0)
		return nil
	}

	agg := &p.cfg.Aggregation
	eqItem, err := aggregateItem(&agg.Rows, eq, p.cfg.LabelFilter, agg.Type)
	if err != nil {
		return providerErrorf("Aggregated.load", p.cfg.ID, err)
	}
	varItem, err := aggregateItem(&agg.Columns, vr, p.cfg.LabelFilter, agg.Type)
	if err != nil {
		return providerErrorf("Aggregated.load", p.cfg.ID, err)
	}

	p.rowSecs, p.colSecs = eqItem.UnitedSections(), varItem.UnitedSections()
	R, C := len(p.rowSecs), len(p.colSecs)
	p.alloc(R, C)
	p.present = make([]bool, R*C)

	colOf := make([]int, vr.Entries)
	for i := range colOf {
		colOf[i] = -1
	}
	for c, secs := range p.colSecs {
		for _, s := range secs {
			colOf[s-vr.FirstSection] = c
		}
	}

	abs := agg.UseAbsoluteValues || p.cfg.UseAbsoluteValues
	rowNNZ, colNNZ := make([]int, R), make([]int, C)
	w := &writer{buf: p.buf}
	buckets := make([][]float64, C)
	counts := make([]int, C)
	var rt rangeTracker
	for r, secs := range p.rowSecs {
		for c := range buckets {
			buckets[c] = buckets[c][:0]
			counts[c] = 0
		}
		for _, sec := range secs {
			row := src.jac.Row(sec)
			start, end := row.Span(vr.FirstSection, vr.LastSection)
			cols, data := row.ColIdx(), row.Data()
			for n := start; n < end; n++ {
				c := colOf[cols[n]-vr.FirstSection]
				if c < 0 {
					continue
				}
				counts[c]++
				rowNNZ[r]++
				colNNZ[c]++
				v := data[n]
				if !src.special.IsRegular(v) {
					continue
				}
				if abs {
					v = math.Abs(v)
				}
				buckets[c] = append(buckets[c], v)
			}
		}
		for c := range buckets {
			var v float64
			var ok bool
			if agg.Type == aggregation.Count {
				v, ok = float64(counts[c]), counts[c] > 0
			} else {
				v, ok = aggregation.Reduce(agg.Type, buckets[c])
			}
			if !ok {
				continue
			}
			w.set(r, c, v)
			p.present[r*C+c] = true
			rt.add(v)
		}
	}
	if w.err != nil {
		return providerErrorf("Aggregated.load", p.cfg.ID, w.err)
	}
	p.lo, p.hi, p.hasRange = rt.lo, rt.hi, rt.ok

	p.rows = groupHeader(eq, eqItem, rowNNZ)
	p.cols = groupHeader(vr, varItem, colNNZ)

	return nil
}

// aggregateItem runs the aggregator for s into the item stored under s.Offset,
// creating the map and the item when missing.
func aggregateItem(items *map[int]*aggregation.Item, s *model.Symbol, f aggregation.LabelFilter, t aggregation.Type) (*aggregation.Item, error) {
	if *items == nil {
		*items = make(map[int]*aggregation.Item)
	}
	it := (*items)[s.Offset]
	if it == nil {
		it = aggregation.NewItem(s.Name, s.Offset)
		(*items)[s.Offset] = it
	}
	if err := aggregation.AggregateSymbol(s, it, f, t); err != nil {
		return nil, err
	}

	return it, nil
}

// groupHeader labels one logical index per united group.
func groupHeader(s *model.Symbol, it *aggregation.Item, entries []int) header {
	n := it.VisibleSectionCount()
	h := header{
		plain:   make([]string, 0, n),
		labels:  make([][]string, 0, n),
		entries: entries,
	}
	labels := it.Labels()
	for k := 0; k < n; k++ {
		l := slices.Clone(labels[s.FirstSection+k])
		h.labels = append(h.labels, l)
		if len(l) == 0 {
			h.plain = append(h.plain, s.Name)
			continue
		}
		h.plain = append(h.plain, s.Name+"("+strings.Join(l, ",")+")")
	}

	return h
}

func cloneGroups(g [][]int) [][]int {
	if g == nil {
		return nil
	}
	out := make([][]int, len(g))
	for i, s := range g {
		out[i] = slices.Clone(s)
	}

	return out
}

var (
	_ Provider = (*Symbols)(nil)
	_ Provider = (*Aggregated)(nil)
)
