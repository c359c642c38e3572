// SPDX-License-Identifier: MIT

package provider_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/ctxlog"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

func TestNewHandler_NilInstance(t *testing.T) {
	t.Parallel()
	h, err := provider.NewHandler(nil)
	require.ErrorIs(t, err, provider.ErrNilInstance)
	require.Nil(t, h)
}

func TestHandler_PolicyFollowsBasis(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.MarginalBasisAware, newHandler(t, transport(t)).MarginalPolicy())
	require.Equal(t, model.MarginalRaw, newHandler(t, scenario(t)).MarginalPolicy())
}

func TestLoadJacobian(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	require.Nil(t, h.CoefficientCount(), "nothing loaded yet")

	require.NoError(t, h.LoadJacobian(context.Background()))
	c := h.CoefficientCount()
	require.NotNil(t, c)
	require.Equal(t, 1, c.Positive(0, 0))
	require.Equal(t, 1, c.Negative(0, 1))
	require.Equal(t, 1, c.Negative(1, 0))
	require.Equal(t, 3, c.NonZeros(c.TotalBlock(), c.TotalColumn()))

	// Reloading recomputes rather than accumulates.
	require.NoError(t, h.LoadJacobian(context.Background()))
	require.Equal(t, 3, h.CoefficientCount().NonZeros(c.TotalBlock(), c.TotalColumn()))
}

func TestLoadJacobian_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHandler(t, scenario(t))
	require.ErrorIs(t, h.LoadJacobian(ctx), context.Canceled)
	require.ErrorIs(t, h.LoadData(ctx, view.NewSession().NewConfig(view.Count)), context.Canceled)
	require.Empty(t, h.ViewIDs())
}

func TestLoadData_Noops(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))

	require.NoError(t, h.LoadData(context.Background(), nil))
	require.NoError(t, h.LoadData(context.Background(), &view.Config{ID: 3, Type: view.Unknown}))
	require.Empty(t, h.ViewIDs())
	require.Nil(t, h.NewProvider(nil))
}

func TestLoadData_ReplacesView(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	cfg := load(t, h, view.NewSession(), view.Count)
	require.Equal(t, view.Count, h.Provider(cfg.ID).Type())

	cfg.Type = view.Overview
	require.NoError(t, h.LoadData(context.Background(), cfg))
	require.Equal(t, view.Overview, h.Provider(cfg.ID).Type())
	require.Equal(t, []int{cfg.ID}, h.ViewIDs())
}

func TestClone(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	s := view.NewSession()
	cfg := load(t, h, s, view.Count)

	id := s.NextViewID()
	cp := h.Clone(cfg.ID, id)
	require.NotNil(t, cp)
	require.Equal(t, id, cp.ID)
	require.Equal(t, view.Count, cp.Type)
	require.Equal(t, cells(h, cfg.ID), cells(h, id))
	require.Equal(t, []int{cfg.ID, id}, h.ViewIDs())

	h.Remove(cfg.ID)
	require.Equal(t, []int{id}, h.ViewIDs())
	require.Equal(t, "2", h.Data(0, 3, id).String(), "clone outlives its source")
}

func TestClone_MissingView(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))

	require.Nil(t, h.Clone(41, 42))
	require.Empty(t, h.ViewIDs())
	require.Nil(t, h.Provider(42))
}

func TestUnknownViewQueries(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))

	require.False(t, h.Data(0, 0, 9).Valid())
	require.Zero(t, h.RowCount(9))
	require.Zero(t, h.ColumnCount(9))
	require.Empty(t, h.HeaderData(view.Vertical, 9, 0, 0))
	require.Empty(t, h.PlainHeaderData(view.Horizontal, 9, 0))
	require.Nil(t, h.SectionLabels(view.Horizontal, 9, 0))
	require.Nil(t, h.RowEntries(9))
	require.Nil(t, h.ColumnEntries(9))
	require.Nil(t, h.Config(9))
	lo, hi := h.DataRange(9)
	require.Zero(t, lo)
	require.Zero(t, hi)
}

func TestValueFilter(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	cfg := load(t, h, view.NewSession(), view.Count, func(c *view.Config) {
		c.Filter = view.NewValueFilter(1, 1)
	})

	require.Equal(t, 1.0, h.Data(0, 0, cfg.ID).Num)
	require.False(t, h.Data(1, 1, cfg.ID).Valid(), "0 is outside [1, 1]")
	require.False(t, h.Data(2, 3, cfg.ID).Valid(), "3 is outside [1, 1]")

	// Char cells are never filtered.
	ov := load(t, h, view.NewSession(), view.Overview, func(c *view.Config) {
		c.Filter = view.NewValueFilter(1, 1)
	})
	require.True(t, h.Data(0, 0, ov.ID).Valid())
}

func TestWithSpecialValues(t *testing.T) {
	t.Parallel()
	sv := model.DefaultSpecialValues()
	sv.Undf = -2 // treat the (1,0) coefficient as undefined

	h := newHandler(t, scenario(t), provider.WithSpecialValues(sv))
	cfg := load(t, h, view.NewSession(), view.Symbols, pair(1, 0))
	require.Equal(t, model.Undf, h.Data(0, 0, cfg.ID).Special)
	require.Equal(t, "UNDF", h.Data(0, 0, cfg.ID).String())

	c := h.CoefficientCount()
	require.Zero(t, c.NonZeros(1, 0), "undefined values are not counted")
}

func TestContextLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(&buf, slog.LevelDebug, false))

	h := newHandler(t, scenario(t))
	cfg := view.NewSession().NewConfig(view.Overview)
	require.NoError(t, h.LoadData(ctx, cfg))

	require.Contains(t, buf.String(), "jacobian loaded")
	require.Contains(t, buf.String(), "view loaded")
	require.Contains(t, buf.String(), "view_type=overview")
}

func TestConcurrentLoadsAndQueries(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	s := view.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			typ := view.Types()[i%4]
			cfg := s.NewConfig(typ)
			if err := h.LoadData(context.Background(), cfg); err != nil {
				t.Error(err)
				return
			}
			for r := 0; r < h.RowCount(cfg.ID); r++ {
				_ = h.Data(r, 0, cfg.ID)
				_ = h.HeaderData(view.Vertical, cfg.ID, r, 0)
			}
		}()
	}
	wg.Wait()
	require.Len(t, h.ViewIDs(), 8)
}
