// SPDX-License-Identifier: MIT

package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	sv := model.DefaultSpecialValues()

	cases := []struct {
		v    float64
		want model.Special
	}{
		{1.5, model.Regular},
		{0, model.Regular},
		{math.Inf(1), model.PlusInf},
		{math.Inf(-1), model.MinusInf},
		{math.NaN(), model.NA},
		{model.DefaultEps, model.Eps},
		{model.DefaultUndf, model.Undf},
	}
	for _, c := range cases {
		require.Equal(t, c.want, sv.Classify(c.v), "value %v", c.v)
	}
	require.Equal(t, "EPS", model.Eps.String())
	require.Equal(t, "+INF", sv.Format(math.Inf(1)))
	require.Equal(t, "2.5", sv.Format(2.5))
}

func TestClassify_CustomSentinels(t *testing.T) {
	t.Parallel()
	sv := model.SpecialValues{PlusInf: 3e300, MinusInf: -3e300, Eps: 5e300, NA: 2e300, Undf: 1e300}

	require.Equal(t, model.PlusInf, sv.Classify(3e300))
	require.Equal(t, model.Eps, sv.Classify(5e300))
	require.Equal(t, model.NA, sv.Classify(math.NaN()))
	require.Equal(t, 3e300, sv.Value(model.PlusInf))
}

func TestSign(t *testing.T) {
	t.Parallel()
	sv := model.DefaultSpecialValues()

	require.Equal(t, 1, sv.Sign(2))
	require.Equal(t, -1, sv.Sign(-2))
	require.Equal(t, 0, sv.Sign(0))
	require.Equal(t, 1, sv.Sign(model.DefaultEps))
	require.Equal(t, -1, sv.Sign(math.Inf(-1)))
	require.Equal(t, 0, sv.Sign(math.NaN()))
	require.Equal(t, 0, sv.Sign(model.DefaultUndf))
}

func TestMarginalPolicy(t *testing.T) {
	t.Parallel()
	sv := model.DefaultSpecialValues()

	require.Equal(t, model.MarginalRaw, model.MarginalPolicyFor(false))
	p := model.MarginalPolicyFor(true)
	require.Equal(t, "basis-aware", p.String())

	require.Equal(t, sv.Eps, p.Marginal(model.Attributes{Marginal: 0, Basic: false}, sv))
	require.Equal(t, 0.0, p.Marginal(model.Attributes{Marginal: 0, Basic: true}, sv))
	require.Equal(t, 0.5, p.Marginal(model.Attributes{Marginal: 0.5}, sv))
	require.Equal(t, 0.0, model.MarginalRaw.Marginal(model.Attributes{}, sv))
}
