// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/modelinspector/ctxlog"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/sparse"
	"github.com/katalvlaran/modelinspector/view"
)

// Handler computes views of one model instance and caches them by view id.
//
// The Jacobian and the CoefficientCount are loaded once and shared by all
// loads; they are only replaced under the write lock. Each cached provider
// owns its buffers, so queries take the read lock only. A Handler is safe for
// concurrent use.
type Handler struct {
	mu    sync.RWMutex
	inst  model.Instance
	opts  Options
	jac   *sparse.Matrix
	count *sparse.CoefficientCount
	cache map[int]Provider

	special model.SpecialValues
	policy  model.MarginalPolicy
}

// NewHandler returns a Handler for inst. The Jacobian is loaded on first use
// or by LoadJacobian.
//
// Errors:
//   - ErrNilInstance.
func NewHandler(inst model.Instance, opts ...Option) (*Handler, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := gatherOptions(opts...)
	sv := inst.SpecialValues()
	if o.special != nil {
		sv = *o.special
	}

	return &Handler{
		inst:    inst,
		opts:    o,
		cache:   make(map[int]Provider),
		special: sv,
		policy:  model.MarginalPolicyFor(inst.HasBasis()),
	}, nil
}

// Instance returns the model instance.
func (h *Handler) Instance() model.Instance { return h.inst }

// MarginalPolicy returns the policy resolved from the instance's basis information.
func (h *Handler) MarginalPolicy() model.MarginalPolicy { return h.policy }

// logger prefers a logger carried by ctx over the configured one.
func (h *Handler) logger(ctx context.Context) *slog.Logger {
	if l, ok := ctxlog.Lookup(ctx); ok {
		return l
	}

	return h.opts.logger
}

// LoadJacobian (re)reads every sparse row from the instance and rebuilds the
// CoefficientCount in place. Cached views are kept.
//
// Errors:
//   - ctx.Err() when ctx is done before the load starts.
//   - sparse.ErrOutOfRange for rows referencing columns beyond VariableCount().
func (h *Handler) LoadJacobian(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.loadJacobianLocked(ctx)
}

func (h *Handler) loadJacobianLocked(ctx context.Context) error {
	const op = "LoadJacobian"
	start := time.Now()
	rows, cols := h.inst.EquationCount(), h.inst.VariableCount()
	jac := sparse.NewMatrix(rows, cols)
	rhs := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if err := jac.SetRow(i, h.inst.Row(i)); err != nil {
			return fmt.Errorf("%s(row %d): %w", op, i, err)
		}
		rhs[i] = h.inst.RHS(i)
	}

	eqs, vars := h.inst.Equations(), h.inst.Variables()
	count := h.count
	if count == nil || count.EquationBlocks() != len(eqs) || count.VariableBlocks() != len(vars) {
		count = sparse.NewCoefficientCount(len(eqs), len(vars))
	}
	err := count.Recount(jac, model.SectionBlocks(eqs, rows), model.SectionBlocks(vars, cols), rhs, h.special.Sign)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	h.jac, h.count = jac, count

	h.logger(ctx).Debug("jacobian loaded",
		"rows", rows, "cols", cols, "nonzeros", jac.NonZeros(), "elapsed", time.Since(start))

	return nil
}

// ensureJacobian loads the Jacobian when no load has happened yet.
func (h *Handler) ensureJacobian(ctx context.Context) error {
	h.mu.RLock()
	loaded := h.jac != nil
	h.mu.RUnlock()
	if loaded {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.jac != nil {
		return nil
	}

	return h.loadJacobianLocked(ctx)
}

// NewProvider returns an unloaded provider for cfg; nil for a nil Config or
// an Unknown view type.
func (h *Handler) NewProvider(cfg *view.Config) Provider {
	return New(cfg)
}

// LoadData computes the view described by cfg and installs it under cfg.ID,
// replacing any previous provider. A nil cfg or an Unknown type is a no-op.
//
// Errors:
//   - ctx.Err() when ctx is done before the load starts; a started load runs
//     to completion.
//   - ErrSymbolIndex for Symbols/Postopt views selecting missing symbols.
//   - Jacobian load errors.
func (h *Handler) LoadData(ctx context.Context, cfg *view.Config) error {
	log := h.logger(ctx)
	p := h.NewProvider(cfg)
	if p == nil {
		log.Debug("load skipped: no view configuration or unknown type")
		return nil
	}
	if err := ctx.Err(); err != nil {
		h.opts.metrics.observe(cfg.Type, 0, err)
		return err
	}
	if err := h.ensureJacobian(ctx); err != nil {
		h.opts.metrics.observe(cfg.Type, 0, err)
		return err
	}

	start := time.Now()
	h.mu.RLock()
	err := p.load(h.sourceLocked())
	h.mu.RUnlock()
	elapsed := time.Since(start)
	h.opts.metrics.observe(cfg.Type, elapsed, err)
	if err != nil {
		log.Warn("view load failed", "view_id", cfg.ID, "view_type", cfg.Type.String(), "err", err)
		return err
	}

	h.install(cfg.ID, p)
	log.Debug("view loaded",
		"view_id", cfg.ID, "view_type", cfg.Type.String(),
		"rows", p.RowCount(), "cols", p.ColumnCount(), "elapsed", elapsed)

	return nil
}

// Aggregate computes an aggregated view. It is a no-op for a nil cfg or when
// no aggregation type is selected; views other than Symbols are loaded as
// plain views.
func (h *Handler) Aggregate(ctx context.Context, cfg *view.Config) error {
	if cfg == nil || !cfg.Aggregation.Active() {
		h.logger(ctx).Debug("aggregate skipped: no aggregation active")
		return nil
	}

	return h.LoadData(ctx, cfg)
}

func (h *Handler) sourceLocked() *source {
	return &source{
		inst:      h.inst,
		equations: h.inst.Equations(),
		variables: h.inst.Variables(),
		jac:       h.jac,
		count:     h.count,
		special:   h.special,
		policy:    h.policy,
	}
}

func (h *Handler) install(viewID int, p Provider) {
	h.mu.Lock()
	h.cache[viewID] = p
	n := len(h.cache)
	h.mu.Unlock()
	h.opts.metrics.setCached(n)
}

// Clone deep-copies the provider of viewID under newViewID and returns the
// copied configuration. A missing viewID returns nil and leaves the cache
// unchanged.
func (h *Handler) Clone(viewID, newViewID int) *view.Config {
	h.mu.Lock()
	p, ok := h.cache[viewID]
	if !ok {
		h.mu.Unlock()
		return nil
	}
	cp := p.clone(newViewID)
	h.cache[newViewID] = cp
	n := len(h.cache)
	h.mu.Unlock()
	h.opts.metrics.setCached(n)

	return cp.Config()
}

// Remove drops the provider of viewID, if any.
func (h *Handler) Remove(viewID int) {
	h.mu.Lock()
	delete(h.cache, viewID)
	n := len(h.cache)
	h.mu.Unlock()
	h.opts.metrics.setCached(n)
}

// Provider returns the cached provider of viewID, or nil.
func (h *Handler) Provider(viewID int) Provider {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.cache[viewID]
}

// Config returns a copy of the configuration viewID was computed from, or
// nil. For aggregated views the copy carries the aggregation results.
func (h *Handler) Config(viewID int) *view.Config {
	if p := h.Provider(viewID); p != nil {
		return p.Config()
	}

	return nil
}

// Data returns cell (row, col) of viewID. Numeric cells rejected by the
// view's value filter and any out-of-range query are invalid.
func (h *Handler) Data(row, col, viewID int) Value {
	p := h.Provider(viewID)
	if p == nil {
		return Value{}
	}
	v := p.Data(row, col)
	if v.Kind == Number && v.Special == model.Regular && !p.filter().Accepts(v.Num) {
		return Value{}
	}

	return v
}

// HeaderData returns label dimension of logicalIndex on axis o. Block views
// have a single level; use dimension 0.
func (h *Handler) HeaderData(o view.Orientation, viewID, logicalIndex, dimension int) string {
	p := h.Provider(viewID)
	if p == nil {
		return ""
	}

	return p.header(o).labelAt(logicalIndex, dimension)
}

// PlainHeaderData returns the one-line text of logicalIndex on axis o.
func (h *Handler) PlainHeaderData(o view.Orientation, viewID, logicalIndex int) string {
	p := h.Provider(viewID)
	if p == nil {
		return ""
	}

	return p.header(o).plainAt(logicalIndex)
}

// SectionLabels returns the label path of logicalIndex on axis o, nil when
// the view has none.
func (h *Handler) SectionLabels(o view.Orientation, viewID, logicalIndex int) []string {
	p := h.Provider(viewID)
	if p == nil {
		return nil
	}

	return p.header(o).labelsAt(logicalIndex)
}

// RowCount returns the rows of viewID, 0 when unknown.
func (h *Handler) RowCount(viewID int) int {
	if p := h.Provider(viewID); p != nil {
		return p.RowCount()
	}

	return 0
}

// ColumnCount returns the columns of viewID, 0 when unknown.
func (h *Handler) ColumnCount(viewID int) int {
	if p := h.Provider(viewID); p != nil {
		return p.ColumnCount()
	}

	return 0
}

// RowEntries returns the nonzero coefficients per row of viewID.
func (h *Handler) RowEntries(viewID int) []int {
	if p := h.Provider(viewID); p != nil {
		return slices.Clone(p.header(view.Vertical).entries)
	}

	return nil
}

// ColumnEntries returns the nonzero coefficients per column of viewID.
func (h *Handler) ColumnEntries(viewID int) []int {
	if p := h.Provider(viewID); p != nil {
		return slices.Clone(p.header(view.Horizontal).entries)
	}

	return nil
}

// DataTree returns the postopt tree of viewID, nil for other views.
func (h *Handler) DataTree(viewID int) *PostoptItem {
	if p, ok := h.Provider(viewID).(*Postopt); ok {
		return p.Tree()
	}

	return nil
}

// DataRange returns the body value range of viewID; (0, 0) when unknown or empty.
func (h *Handler) DataRange(viewID int) (lo, hi float64) {
	if p := h.Provider(viewID); p != nil {
		lo, hi, _ = p.DataRange()
	}

	return lo, hi
}

// CoefficientCount returns a copy of the current counts, nil before the
// Jacobian is loaded.
func (h *Handler) CoefficientCount() *sparse.CoefficientCount {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.count == nil {
		return nil
	}

	return h.count.Clone()
}

// ViewIDs returns the cached view ids in ascending order.
func (h *Handler) ViewIDs() []int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Sorted(maps.Keys(h.cache))
}
