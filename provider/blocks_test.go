// SPDX-License-Identifier: MIT

package provider_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

func TestOverview_Scenario(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	cfg := load(t, h, view.NewSession(), view.Overview)

	require.Equal(t, 3, h.RowCount(cfg.ID))
	require.Equal(t, 4, h.ColumnCount(cfg.ID))

	require.Equal(t, byte('+'), h.Data(0, 0, cfg.ID).Char)
	require.Equal(t, byte('-'), h.Data(0, 1, cfg.ID).Char)
	require.Equal(t, byte('-'), h.Data(1, 0, cfg.ID).Char)
	require.Equal(t, byte(0), h.Data(1, 1, cfg.ID).Char)
	require.Equal(t, provider.Char, h.Data(1, 1, cfg.ID).Kind)

	require.Equal(t, byte('E'), h.Data(0, 3, cfg.ID).Char, "equation type column")
	require.Equal(t, byte('+'), h.Data(2, 0, cfg.ID).Char, "non-negative bounds")
}

func TestOverview_Transport(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Overview)

	want := [][]string{
		{"-", "+", "", "E"},
		{"+", "", "+", "L"},
		{"+", "", "+", "G"},
		{"+", "u", "", ""},
	}
	require.Empty(t, cmp.Diff(want, cells(h, cfg.ID)))
	require.Equal(t, "RHS", h.PlainHeaderData(view.Horizontal, cfg.ID, 2))
	require.Equal(t, "Type", h.PlainHeaderData(view.Horizontal, cfg.ID, 3))
	require.Equal(t, "supply", h.HeaderData(view.Vertical, cfg.ID, 1, 0))
}

func TestCount_Scenario(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	cfg := load(t, h, view.NewSession(), view.Count)

	want := [][]string{
		{"1", "1", "0", "2"},
		{"1", "0", "0", "1"},
		{"2", "1", "0", "3"},
	}
	require.Empty(t, cmp.Diff(want, cells(h, cfg.ID)))
	lo, hi := h.DataRange(cfg.ID)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 1.0, hi)
	require.Equal(t, []int{2, 1, 3}, h.RowEntries(cfg.ID))
	require.Equal(t, []int{2, 1, 0, 3}, h.ColumnEntries(cfg.ID))
}

func TestCount_Transport(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Count)

	want := [][]string{
		{"6", "1", "0", "7"},
		{"6", "0", "2", "6"},
		{"6", "0", "3", "6"},
		{"18", "1", "5", "19"},
	}
	require.Empty(t, cmp.Diff(want, cells(h, cfg.ID)))
}

func TestAverage_Transport(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Average)

	require.Equal(t, 6.0, h.Data(0, 0, cfg.ID).Num)
	require.Equal(t, 3.0, h.Data(1, 0, cfg.ID).Num)
	require.Equal(t, 2.0, h.Data(2, 0, cfg.ID).Num)
	require.Equal(t, 1.0, h.Data(2, 2, cfg.ID).Num)
	require.Equal(t, 3.0, h.Data(3, 0, cfg.ID).Num, "18 nonzeros over 6 entries of x")
	require.InDelta(t, 19.0/6.0, h.Data(3, 3, cfg.ID).Num, 1e-12)

	lo, hi := h.DataRange(cfg.ID)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 6.0, hi)
}

func TestScaling_Transport(t *testing.T) {
	t.Parallel()
	h := newHandler(t, transport(t))
	cfg := load(t, h, view.NewSession(), view.Scaling)

	require.Equal(t, 8, h.RowCount(cfg.ID))
	require.Equal(t, 4, h.ColumnCount(cfg.ID))

	num := func(r, c int) float64 { return h.Data(r, c, cfg.ID).Num }
	// cost
	require.Equal(t, 0.225, num(0, 0))
	require.Equal(t, 0.126, num(1, 0))
	require.Equal(t, 1.0, num(0, 1))
	require.Equal(t, 0.0, num(0, 2), "zero RHS is not a scale")
	require.Equal(t, 1.0, num(0, 3))
	require.Equal(t, 0.126, num(1, 3))
	// supply
	require.Equal(t, 0.0, num(2, 1), "untouched block is zeroed")
	require.Equal(t, 600.0, num(2, 2))
	require.Equal(t, 350.0, num(3, 2))
	// global
	require.Equal(t, 1.0, num(6, 0))
	require.Equal(t, 0.126, num(7, 0))
	require.Equal(t, 600.0, num(6, 2))
	require.Equal(t, 275.0, num(7, 2))

	lo, hi := h.DataRange(cfg.ID)
	require.Equal(t, 0.126, lo)
	require.Equal(t, 1.0, hi)

	require.Equal(t, "max", h.HeaderData(view.Vertical, cfg.ID, 0, 1))
	require.Equal(t, "min", h.HeaderData(view.Vertical, cfg.ID, 1, 1))
	require.Equal(t, "cost", h.PlainHeaderData(view.Vertical, cfg.ID, 1))
	require.Equal(t, []string{"Global", "max"}, h.SectionLabels(view.Vertical, cfg.ID, 6))
}

func TestScaling_SignedValues(t *testing.T) {
	t.Parallel()
	h := newHandler(t, scenario(t))
	cfg := load(t, h, view.NewSession(), view.Scaling, func(c *view.Config) { c.UseAbsoluteValues = false })

	require.Equal(t, 5.0, h.Data(0, 0, cfg.ID).Num)
	require.Equal(t, -3.0, h.Data(1, 3, cfg.ID).Num, "min across variables of e0")
	require.Equal(t, -2.0, h.Data(5, 0, cfg.ID).Num, "global min of v0")
}

func TestEmptyModel(t *testing.T) {
	t.Parallel()
	m, err := model.NewBuilder("empty").Build()
	require.NoError(t, err)
	h := newHandler(t, m)
	s := view.NewSession()

	for _, typ := range view.Types() {
		cfg := load(t, h, s, typ)
		require.Zero(t, h.RowCount(cfg.ID), typ.String())
		require.Zero(t, h.ColumnCount(cfg.ID), typ.String())
		require.False(t, h.Data(0, 0, cfg.ID).Valid(), typ.String())
		require.False(t, h.Data(-1, 3, cfg.ID).Valid(), typ.String())
	}
}
