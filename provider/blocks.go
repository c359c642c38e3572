// SPDX-License-Identifier: MIT

// Block views: one cell per (equation symbol, variable symbol) pair plus
// trailing RHS/total columns and a trailing totals row.
//
// Layouts for E equation symbols and V variable symbols:
//
//	Scaling   (2E+2)×(V+2)  max/min coefficient per block; col V RHS, col V+1 all variables
//	Overview  (E+1)×(V+2)   sign char per block; col V RHS sign, col V+1 equation type
//	Count     (E+1)×(V+2)   nonzeros per block; col V RHS, col V+1 row total
//	Average   (E+1)×(V+2)   Count divided by the symbol's entries

package provider

import (
	"math"

	"github.com/katalvlaran/modelinspector/matrix"
	"github.com/katalvlaran/modelinspector/model"
)

// Header texts of the trailing rows and columns.
const (
	TextRHS    = "RHS"
	TextTotal  = "Total"
	TextRange  = "Range"
	TextType   = "Type"
	TextGlobal = "Global"
	TextMax    = "max"
	TextMin    = "min"
)

// empty gives a model without equation or variable symbols a 0×0 view:
// trailing rows and columns only summarize blocks.
func (b *base) empty(E, V int) bool {
	if E > 0 && V > 0 {
		return false
	}
	b.alloc(0, 0)
	b.rows, b.cols = header{}, header{}

	return true
}

// ---------- Scaling ----------

// Scaling shows the coefficient range of every block.
type Scaling struct{ base }

func (p *Scaling) clone(newViewID int) Provider { return &Scaling{base: p.cloneBase(newViewID)} }

// Data returns the max (even rows) or min (odd rows) of a block.
func (p *Scaling) Data(row, col int) Value {
	if !p.inRange(row, col) {
		return Value{}
	}

	return Value{Kind: Number, Num: p.buf.Get(row, col)}
}

// load scans every sparse row once.
//
// Implementation:
//   - Stage 1: Fill with +MaxFloat64, then reseed the max rows with -MaxFloat64.
//   - Stage 2: per coefficient of equation block e and variable block v,
//     update (e, v), (e, all variables), (global, v) and (global, all).
//   - Stage 3: same for the right-hand side in column V.
//   - Stage 4: record the body range, then zero the untouched cells.
//
// Only regular, nonzero values are considered; absolute values are used when
// the view asks for them.
func (p *Scaling) load(src *source) error {
	E, V := len(src.equations), len(src.variables)
	if p.empty(E, V) {
		return nil
	}
	p.alloc(2*E+2, V+2)
	if err := p.buf.Fill(math.MaxFloat64); err != nil {
		return providerErrorf("Scaling.load", p.cfg.ID, err)
	}
	w := &writer{buf: p.buf}
	for i := 0; i < p.buf.Rows(); i += 2 {
		for j := 0; j < p.buf.Cols(); j++ {
			w.set(i, j, -math.MaxFloat64)
		}
	}

	abs := p.cfg.UseAbsoluteValues
	rhsCol, allCol, globalRow := V, V+1, 2*E
	eqBlocks := model.SectionBlocks(src.equations, src.jac.Rows())
	varBlocks := model.SectionBlocks(src.variables, src.jac.Cols())
	update := func(blockRow, col int, v float64) {
		if v > p.buf.Get(blockRow, col) {
			w.set(blockRow, col, v)
		}
		if v < p.buf.Get(blockRow+1, col) {
			w.set(blockRow+1, col, v)
		}
	}
	accept := func(v float64) (float64, bool) {
		if v == 0 || !src.special.IsRegular(v) {
			return 0, false
		}
		if abs {
			v = math.Abs(v)
		}
		return v, true
	}

	for i, e := range eqBlocks {
		if e < 0 {
			continue
		}
		r := src.jac.Row(i)
		cols, data := r.ColIdx(), r.Data()
		for k, c := range cols {
			vb := varBlocks[c]
			v, ok := accept(data[k])
			if vb < 0 || !ok {
				continue
			}
			update(2*e, vb, v)
			update(2*e, allCol, v)
			update(globalRow, vb, v)
			update(globalRow, allCol, v)
		}
		if v, ok := accept(src.inst.RHS(i)); ok {
			update(2*e, rhsCol, v)
			update(globalRow, rhsCol, v)
		}
	}

	if w.err != nil {
		return providerErrorf("Scaling.load", p.cfg.ID, w.err)
	}

	untouched := func(v float64) bool { return v == math.MaxFloat64 || v == -math.MaxFloat64 }
	p.setRange(2*E, V, untouched)
	err := p.buf.Apply(func(_, _ int, v float64) float64 {
		if untouched(v) {
			return 0
		}
		return v
	})
	if err != nil {
		return providerErrorf("Scaling.load", p.cfg.ID, err)
	}

	p.rows = header{}
	for e, s := range src.equations {
		nnz := src.count.NonZeros(e, src.count.TotalColumn())
		p.rows.plain = append(p.rows.plain, s.Name, s.Name)
		p.rows.labels = append(p.rows.labels, []string{s.Name, TextMax}, []string{s.Name, TextMin})
		p.rows.entries = append(p.rows.entries, nnz, nnz)
	}
	total := src.count.NonZeros(src.count.TotalBlock(), src.count.TotalColumn())
	p.rows.plain = append(p.rows.plain, TextGlobal, TextGlobal)
	p.rows.labels = append(p.rows.labels, []string{TextGlobal, TextMax}, []string{TextGlobal, TextMin})
	p.rows.entries = append(p.rows.entries, total, total)
	p.cols = symbolHeader(src.variables, columnEntries(src), TextRHS, TextRange)

	return nil
}

// ---------- Overview ----------

// Overview shows the sign pattern of every block.
type Overview struct{ base }

func (p *Overview) clone(newViewID int) Provider { return &Overview{base: p.cloneBase(newViewID)} }

// Data returns a sign or type character. Blocks without coefficients hold 0.
func (p *Overview) Data(row, col int) Value {
	if !p.inRange(row, col) {
		return Value{}
	}

	return CharValue(byte(p.buf.Get(row, col)))
}

// load derives the signs from the CoefficientCount; the Jacobian is not scanned.
func (p *Overview) load(src *source) error {
	E, V := len(src.equations), len(src.variables)
	if p.empty(E, V) {
		return nil
	}
	c := src.count
	p.alloc(E+1, V+2)
	w := &writer{buf: p.buf}
	for e, s := range src.equations {
		for v := 0; v < V; v++ {
			w.set(e, v, float64(sign(c.Positive(e, v), c.Negative(e, v))))
		}
		w.set(e, V, float64(sign(c.Positive(e, c.RHSColumn()), c.Negative(e, c.RHSColumn()))))
		if s.Entries > 0 {
			w.set(e, V+1, float64(src.inst.EquationType(s.FirstSection)))
		}
	}

	n := src.inst.VariableCount()
	lower, upper := make([]float64, n), make([]float64, n)
	src.inst.VariableLowerBounds(lower)
	src.inst.VariableUpperBounds(upper)
	for v, s := range src.variables {
		w.set(E, v, float64(variableCode(src, s, lower, upper)))
	}
	if w.err != nil {
		return providerErrorf("Overview.load", p.cfg.ID, w.err)
	}

	p.rows = symbolHeader(src.equations, rowEntries(src), TextType)
	p.cols = symbolHeader(src.variables, columnEntries(src), TextRHS, TextType)

	return nil
}

// variableCode is the type char of a non-continuous symbol, else the sign of
// its bounds: '+' all lower >= 0, '-' all upper <= 0, 'u' otherwise.
func variableCode(src *source, s *model.Symbol, lower, upper []float64) byte {
	if s.Entries == 0 {
		return 0
	}
	if t := src.inst.VariableType(s.FirstSection); t != model.VariableContinuous && t != 0 {
		return t
	}
	positive, negative := true, true
	for j := s.FirstSection; j <= s.LastSection && j < len(lower); j++ {
		if lower[j] < 0 {
			positive = false
		}
		if upper[j] > 0 {
			negative = false
		}
	}
	switch {
	case positive:
		return '+'
	case negative:
		return '-'
	default:
		return 'u'
	}
}

// ---------- Count ----------

// Count shows the number of nonzeros of every block.
type Count struct{ base }

func (p *Count) clone(newViewID int) Provider { return &Count{base: p.cloneBase(newViewID)} }

// Data returns a nonzero count.
func (p *Count) Data(row, col int) Value {
	if !p.inRange(row, col) {
		return Value{}
	}

	return Value{Kind: Number, Num: p.buf.Get(row, col)}
}

func (p *Count) load(src *source) error {
	E, V := len(src.equations), len(src.variables)
	if p.empty(E, V) {
		return nil
	}
	p.alloc(E+1, V+2)
	if err := fillCounts(p.buf, src, E, V, func(n int, _, _ int) float64 { return float64(n) }); err != nil {
		return providerErrorf("Count.load", p.cfg.ID, err)
	}
	p.setRange(E, V, nil)
	p.rows = symbolHeader(src.equations, rowEntries(src), TextTotal)
	p.cols = symbolHeader(src.variables, columnEntries(src), TextRHS, TextTotal)

	return nil
}

// ---------- Average ----------

// Average shows nonzeros per symbol entry: rows are divided by the equation
// symbol's entries, the totals row by the variable symbol's entries.
type Average struct{ base }

func (p *Average) clone(newViewID int) Provider { return &Average{base: p.cloneBase(newViewID)} }

// Data returns a density ratio.
func (p *Average) Data(row, col int) Value {
	if !p.inRange(row, col) {
		return Value{}
	}

	return Value{Kind: Number, Num: p.buf.Get(row, col)}
}

func (p *Average) load(src *source) error {
	E, V := len(src.equations), len(src.variables)
	if p.empty(E, V) {
		return nil
	}
	p.alloc(E+1, V+2)
	rowsTotal := src.jac.Rows()
	err := fillCounts(p.buf, src, E, V, func(n int, e, v int) float64 {
		var d int
		switch {
		case e < E:
			d = src.equations[e].Entries
		case v < V:
			d = src.variables[v].Entries
		default:
			d = rowsTotal
		}
		if d == 0 {
			return 0
		}
		return float64(n) / float64(d)
	})
	if err != nil {
		return providerErrorf("Average.load", p.cfg.ID, err)
	}
	// Trailing cells are ratios of totals and stay out of the body range.
	p.setRange(E, V, nil)
	p.rows = symbolHeader(src.equations, rowEntries(src), TextTotal)
	p.cols = symbolHeader(src.variables, columnEntries(src), TextRHS, TextTotal)

	return nil
}

// fillCounts writes f(nonzeros, e, v) for every cell of an (E+1)×(V+2) layout.
func fillCounts(buf *matrix.Dense, src *source, E, V int, f func(n, e, v int) float64) error {
	c := src.count
	w := &writer{buf: buf}
	for e := 0; e <= E; e++ {
		for v := 0; v < V; v++ {
			w.set(e, v, f(c.NonZeros(e, v), e, v))
		}
		w.set(e, V, f(c.NonZeros(e, c.RHSColumn()), e, V))
		w.set(e, V+1, f(c.NonZeros(e, c.TotalColumn()), e, V+1))
	}

	return w.err
}

// rowEntries returns the nonzeros of equation block i (the totals row for i == E).
func rowEntries(src *source) func(i int) int {
	return func(i int) int { return src.count.NonZeros(i, src.count.TotalColumn()) }
}

// columnEntries returns the nonzeros of variable block j, then the RHS and total columns.
func columnEntries(src *source) func(j int) int {
	return func(j int) int { return src.count.NonZeros(src.count.TotalBlock(), j) }
}

var (
	_ Provider = (*Scaling)(nil)
	_ Provider = (*Overview)(nil)
	_ Provider = (*Count)(nil)
	_ Provider = (*Average)(nil)
)
