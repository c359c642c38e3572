// SPDX-License-Identifier: MIT

package provider_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/aggregation"
	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

func TestSymbols_SupplyByX(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Symbols, pair(1, 0))

	require.Equal(t, 2, h.RowCount(cfg.ID))
	require.Equal(t, 6, h.ColumnCount(cfg.ID))

	want := [][]string{
		{"1", "1", "1", "", "", ""},
		{"", "", "", "1", "1", "1"},
	}
	require.Empty(t, cmp.Diff(want, cells(h, cfg.ID)))
	require.False(t, h.Data(0, 3, cfg.ID).Valid())
	require.Equal(t, []int{3, 3}, h.RowEntries(cfg.ID))
	require.Equal(t, []int{1, 1, 1, 1, 1, 1}, h.ColumnEntries(cfg.ID))

	require.Equal(t, "san-diego", h.HeaderData(view.Vertical, cfg.ID, 1, 0))
	require.Equal(t, "x(san-diego,new-york)", h.PlainHeaderData(view.Horizontal, cfg.ID, 3))
	require.Equal(t, []string{"seattle", "topeka"}, h.SectionLabels(view.Horizontal, cfg.ID, 2))

	lo, hi := h.DataRange(cfg.ID)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 1.0, hi)

	sp, ok := h.Provider(cfg.ID).(*provider.Symbols)
	require.True(t, ok)
	require.Equal(t, 0, sp.RowStart(0))
	require.Equal(t, 0, sp.RowStart(1), "row 2 starts with column 3")
	require.Equal(t, -1, sp.RowStart(2))
}

func TestSymbols_CostByXAbsolute(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	s := view.NewSession()

	signed := load(t, h, s, view.Symbols, pair(0, 0))
	require.Equal(t, -0.225, h.Data(0, 0, signed.ID).Num)
	lo, hi := h.DataRange(signed.ID)
	require.Equal(t, -0.225, lo)
	require.Equal(t, -0.126, hi)

	abs := load(t, h, s, view.Symbols, pair(0, 0), func(c *view.Config) { c.UseAbsoluteValues = true })
	require.Equal(t, 0.225, h.Data(0, 0, abs.ID).Num)
	require.Equal(t, "cost", h.PlainHeaderData(view.Vertical, abs.ID, 0))
}

func TestSymbols_NoPairIsEmpty(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Symbols, func(c *view.Config) {
		c.Equations = []int{0, 1}
		c.Variables = []int{0}
	})

	require.Zero(t, h.RowCount(cfg.ID))
	require.Zero(t, h.ColumnCount(cfg.ID))
}

func TestSymbols_BadIndex(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := view.NewSession().NewConfig(view.Symbols)
	pair(7, 0)(cfg)

	err := h.LoadData(context.Background(), cfg)
	require.ErrorIs(t, err, provider.ErrSymbolIndex)
	require.Nil(t, h.Provider(cfg.ID), "failed loads are not installed")
}

func aggregated(t *testing.T, h *provider.Handler, typ aggregation.Type, checked ...int) *view.Config {
	t.Helper()
	cfg := view.NewSession().NewConfig(view.Symbols)
	pair(2, 0)(cfg)
	cfg.Aggregation = aggregation.New(typ)
	cfg.Aggregation.Columns[0] = aggregation.NewItem("x", 0, checked...)
	require.NoError(t, h.Aggregate(context.Background(), cfg))

	return cfg
}

func TestAggregated_DemandByDestination(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := aggregated(t, h, aggregation.Sum, 1)

	p, ok := h.Provider(cfg.ID).(*provider.Aggregated)
	require.True(t, ok)
	require.Equal(t, 3, h.RowCount(cfg.ID))
	require.Equal(t, 3, h.ColumnCount(cfg.ID))
	require.Equal(t, []int{0, 3}, p.Groups(view.Horizontal, 0))
	require.Equal(t, []int{1, 4}, p.Groups(view.Horizontal, 1))
	require.Equal(t, []int{2, 5}, p.Groups(view.Horizontal, 2))
	require.Equal(t, []int{3}, p.Groups(view.Vertical, 0), "rows stay one per entry")
	require.Nil(t, p.Groups(view.Vertical, 3))

	want := [][]string{
		{"2", "", ""},
		{"", "2", ""},
		{"", "", "2"},
	}
	require.Empty(t, cmp.Diff(want, cells(h, cfg.ID)))
	require.Equal(t, []string{"Sum - 1", "new-york"}, h.SectionLabels(view.Horizontal, cfg.ID, 0))
	require.Equal(t, "x(Sum - 1,chicago)", h.PlainHeaderData(view.Horizontal, cfg.ID, 1))
	require.Equal(t, []int{2, 2, 2}, h.ColumnEntries(cfg.ID))

	// The installed configuration carries the aggregation results.
	got := h.Config(cfg.ID)
	require.True(t, got.Aggregation.Columns[0].Aggregated())
	require.True(t, got.Aggregation.Rows[2].Aggregated())
	require.False(t, cfg.Aggregation.Columns[0].Aggregated(), "caller's config is not modified")
}

func TestAggregated_Types(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))

	// Everything united: one cell per demand entry over all of x.
	for _, tc := range []struct {
		typ  aggregation.Type
		want float64
	}{
		{aggregation.Count, 2},
		{aggregation.Sum, 2},
		{aggregation.Mean, 1},
		{aggregation.Maximum, 1},
		{aggregation.Minimum, 1},
		{aggregation.Median, 1},
	} {
		cfg := aggregated(t, h, tc.typ, 1, 2)
		require.Equal(t, 1, h.ColumnCount(cfg.ID), tc.typ.String())
		require.Equal(t, tc.want, h.Data(0, 0, cfg.ID).Num, tc.typ.String())
	}
}

func TestAggregate_InactiveIsNoop(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := view.NewSession().NewConfig(view.Symbols)
	pair(1, 0)(cfg)

	require.NoError(t, h.Aggregate(context.Background(), cfg))
	require.NoError(t, h.Aggregate(context.Background(), nil))
	require.Empty(t, h.ViewIDs())
}
