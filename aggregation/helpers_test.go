// SPDX-License-Identifier: MIT

package aggregation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/aggregation"
	"github.com/katalvlaran/modelinspector/model"
)

// scenarioSymbol is a two-dimensional equation over sections 0..2:
//
//	0: a.x   1: a.y   2: b.x
func scenarioSymbol(t *testing.T) *model.Symbol {
	t.Helper()
	m, err := model.NewBuilder("scenario").Equation(model.SymbolSpec{
		Name:      "e",
		Dimension: 2,
		Entries: []model.EntrySpec{
			{Labels: []string{"a", "x"}},
			{Labels: []string{"a", "y"}},
			{Labels: []string{"b", "x"}},
		},
	}).Build()
	require.NoError(t, err)

	return m.Equations()[0]
}

// run aggregates sym with the given filter and checked dimensions.
func run(t *testing.T, sym *model.Symbol, f aggregation.LabelFilter, checked ...int) *aggregation.Item {
	t.Helper()
	item := aggregation.NewItem(sym.Name, sym.Offset, checked...)
	require.NoError(t, aggregation.AggregateSymbol(sym, item, f, aggregation.Sum))
	require.True(t, item.Aggregated())

	return item
}
