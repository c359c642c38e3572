// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/katalvlaran/modelinspector/matrix"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/sparse"
	"github.com/katalvlaran/modelinspector/view"
)

// Provider is one computed view. The set of implementations is closed:
// *Scaling, *Overview, *Count, *Average, *Symbols, *Aggregated and *Postopt.
type Provider interface {
	// Type is the view type the provider computes.
	Type() view.Type
	// ViewID is the cache key the provider is installed under.
	ViewID() int
	// Config returns a copy of the configuration the provider was built from.
	Config() *view.Config

	RowCount() int
	ColumnCount() int
	// Data returns cell (row, col); out-of-range cells are invalid.
	Data(row, col int) Value
	// DataRange is the value range of the body cells; ok is false when the
	// view has no numeric body.
	DataRange() (lo, hi float64, ok bool)

	load(src *source) error
	clone(newViewID int) Provider
	header(o view.Orientation) header
	filter() view.ValueFilter
}

// source is the read-only input of a load, snapshotted by the Handler.
type source struct {
	inst      model.Instance
	equations []*model.Symbol
	variables []*model.Symbol
	jac       *sparse.Matrix
	count     *sparse.CoefficientCount
	special   model.SpecialValues
	policy    model.MarginalPolicy
}

// New returns an unloaded provider for cfg, or nil for a nil Config or an
// Unknown type.
func New(cfg *view.Config) Provider {
	if cfg == nil {
		return nil
	}
	b := base{cfg: cfg.Clone(cfg.ID)}
	switch cfg.Type {
	case view.Scaling:
		return &Scaling{base: b}
	case view.Overview:
		return &Overview{base: b}
	case view.Count:
		return &Count{base: b}
	case view.Average:
		return &Average{base: b}
	case view.Symbols:
		if cfg.Aggregation.Active() {
			return &Aggregated{base: b}
		}
		return &Symbols{base: b}
	case view.Postopt:
		return &Postopt{base: b}
	default:
		return nil
	}
}

// base is the state shared by all matrix providers.
type base struct {
	cfg        *view.Config
	buf        *matrix.Dense // nil until loaded; 0×0 for empty views
	rows, cols header
	lo, hi     float64
	hasRange   bool
}

func (b *base) Type() view.Type      { return b.cfg.Type }
func (b *base) ViewID() int          { return b.cfg.ID }
func (b *base) Config() *view.Config { return b.cfg.Clone(b.cfg.ID) }

func (b *base) RowCount() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Rows()
}

func (b *base) ColumnCount() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Cols()
}

func (b *base) DataRange() (lo, hi float64, ok bool) { return b.lo, b.hi, b.hasRange }

func (b *base) filter() view.ValueFilter { return b.cfg.Filter }

func (b *base) header(o view.Orientation) header {
	if o == view.Vertical {
		return b.rows
	}

	return b.cols
}

func (b *base) inRange(row, col int) bool {
	return b.buf != nil && row >= 0 && col >= 0 && row < b.buf.Rows() && col < b.buf.Cols()
}

// cloneBase deep-copies the buffer, headers and configuration under newViewID.
func (b *base) cloneBase(newViewID int) base {
	return base{
		cfg:      b.cfg.Clone(newViewID),
		buf:      b.buf.CloneDense(),
		rows:     b.rows.clone(),
		cols:     b.cols.clone(),
		lo:       b.lo,
		hi:       b.hi,
		hasRange: b.hasRange,
	}
}

// alloc sizes the result buffer. Solver sentinels may be stored, so the
// finite-value guard is off.
func (b *base) alloc(rows, cols int) {
	b.buf = matrix.MustDense(rows, cols, matrix.WithNoValidateNaNInf())
}

// writer is a sticky-error view of a result buffer: after the first failed
// write every later write is skipped and err keeps the failure.
type writer struct {
	buf *matrix.Dense
	err error
}

func (w *writer) set(i, j int, v float64) {
	if w.err == nil {
		w.err = w.buf.Set(i, j, v)
	}
}

// setRange records the body range from the top-left rows×cols block,
// skipping values for which skip is true.
func (b *base) setRange(rows, cols int, skip func(float64) bool) {
	lo, hi, ok, err := matrix.Extrema(b.buf, rows, cols, skip)
	if err != nil || !ok {
		b.lo, b.hi, b.hasRange = 0, 0, false
		return
	}
	b.lo, b.hi, b.hasRange = lo, hi, true
}

// rangeTracker accumulates a min/max over values accepted one by one.
type rangeTracker struct {
	lo, hi float64
	ok     bool
}

func (r *rangeTracker) add(v float64) {
	if !r.ok {
		r.lo, r.hi, r.ok = v, v, true
		return
	}
	r.lo = math.Min(r.lo, v)
	r.hi = math.Max(r.hi, v)
}

// symbolHeader lists symbol names plus trailing meta texts.
func symbolHeader(symbols []*model.Symbol, entries func(i int) int, trailing ...string) header {
	h := header{
		plain:   make([]string, 0, len(symbols)+len(trailing)),
		entries: make([]int, 0, len(symbols)+len(trailing)),
	}
	for i, s := range symbols {
		h.plain = append(h.plain, s.Name)
		h.entries = append(h.entries, entries(i))
	}
	for k, t := range trailing {
		h.plain = append(h.plain, t)
		h.entries = append(h.entries, entries(len(symbols)+k))
	}

	return h
}

// sign folds positive/negative counts into '+', '-', 'm' or 0.
func sign(pos, neg int) byte {
	switch {
	case pos > 0 && neg > 0:
		return 'm'
	case pos > 0:
		return '+'
	case neg > 0:
		return '-'
	default:
		return 0
	}
}
