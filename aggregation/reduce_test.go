// SPDX-License-Identifier: MIT

package aggregation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/aggregation"
)

func TestReduce(t *testing.T) {
	t.Parallel()
	vals := []float64{4, -1, 2, 7}

	cases := []struct {
		typ  aggregation.Type
		want float64
	}{
		{aggregation.Count, 4},
		{aggregation.Sum, 12},
		{aggregation.Mean, 3},
		{aggregation.Median, 3},
		{aggregation.Maximum, 7},
		{aggregation.Minimum, -1},
	}
	for _, c := range cases {
		got, ok := aggregation.Reduce(c.typ, vals)
		require.True(t, ok, c.typ.String())
		require.InDelta(t, c.want, got, 1e-12, c.typ.String())
	}
	require.Equal(t, []float64{4, -1, 2, 7}, vals, "input is not reordered")

	got, ok := aggregation.Reduce(aggregation.Median, []float64{5, 1, 3})
	require.True(t, ok)
	require.Equal(t, 3.0, got)

	_, ok = aggregation.Reduce(aggregation.None, vals)
	require.False(t, ok)
	_, ok = aggregation.Reduce(aggregation.Sum, nil)
	require.False(t, ok)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]aggregation.Type{
		"sum": aggregation.Sum, "Max": aggregation.Maximum, "min": aggregation.Minimum,
		"MEDIAN": aggregation.Median, "count": aggregation.Count, "mean": aggregation.Mean, "": aggregation.None,
	} {
		got, err := aggregation.ParseType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := aggregation.ParseType("mode")
	require.ErrorIs(t, err, aggregation.ErrUnknownType)
	require.Equal(t, "Maximum", aggregation.Maximum.String())
}

func TestAggregation_CloneIsDeep(t *testing.T) {
	t.Parallel()
	sym := scenarioSymbol(t)

	a := aggregation.New(aggregation.Sum)
	a.Rows[0] = run(t, sym, aggregation.LabelFilter{}, 2)
	require.True(t, a.Active())
	require.Equal(t, "Sum", a.TypeText())

	cp := a.Clone()
	require.NotSame(t, a.Rows[0], cp.Rows[0])
	require.NotSame(t, a.Rows[0].LabelTree(), cp.Rows[0].LabelTree())
	require.Equal(t, a.Rows[0].UnitedSections(), cp.Rows[0].UnitedSections())

	cp.Rows[0].CheckStates[1] = aggregation.Checked
	require.False(t, a.Rows[0].IsChecked(1))
	require.NotNil(t, cp.Columns)

	require.False(t, aggregation.New(aggregation.None).Active())
}
