// SPDX-License-Identifier: MIT

package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

// scenario is 2 scalar equations × 2 scalar variables with
// (0,0)=5, (0,1)=-3, (1,0)=-2.
func scenario(t *testing.T) *model.Memory {
	t.Helper()
	m, err := model.NewBuilder("scenario").
		Equation(model.SymbolSpec{Name: "e0", Entries: []model.EntrySpec{{}}}).
		Equation(model.SymbolSpec{Name: "e1", Entries: []model.EntrySpec{{}}}).
		Variable(model.SymbolSpec{Name: "v0", Entries: []model.EntrySpec{{}}}).
		Variable(model.SymbolSpec{Name: "v1", Entries: []model.EntrySpec{{}}}).
		Coefficient(0, 0, 5).
		Coefficient(0, 1, -3).
		Coefficient(1, 0, -2).
		Build()
	require.NoError(t, err)

	return m
}

func transport(t *testing.T) *model.Memory {
	t.Helper()
	m, err := model.LoadYAML("testdata/transport.yaml")
	require.NoError(t, err)

	return m
}

func newHandler(t *testing.T, inst model.Instance, opts ...provider.Option) *provider.Handler {
	t.Helper()
	h, err := provider.NewHandler(inst, opts...)
	require.NoError(t, err)

	return h
}

// load computes a view of type typ and returns its config.
func load(t *testing.T, h *provider.Handler, s *view.Session, typ view.Type, edit ...func(*view.Config)) *view.Config {
	t.Helper()
	cfg := s.NewConfig(typ)
	for _, e := range edit {
		e(cfg)
	}
	require.NoError(t, h.LoadData(context.Background(), cfg))

	return cfg
}

// pair selects one equation and one variable symbol.
func pair(eq, v int) func(*view.Config) {
	return func(c *view.Config) {
		c.Equations = []int{eq}
		c.Variables = []int{v}
	}
}

// cells renders a whole view as strings.
func cells(h *provider.Handler, id int) [][]string {
	out := make([][]string, h.RowCount(id))
	for i := range out {
		out[i] = make([]string, h.ColumnCount(id))
		for j := range out[i] {
			out[i][j] = h.Data(i, j, id).String()
		}
	}

	return out
}
