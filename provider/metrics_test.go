// SPDX-License-Identifier: MIT

package provider_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

// family returns the gathered metric family called name.
func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not gathered", name)

	return nil
}

// counter returns the value of the sample whose labels match want.
func counter(mf *dto.MetricFamily, want map[string]string) float64 {
	for _, m := range mf.GetMetric() {
		match := true
		for _, lp := range m.GetLabel() {
			if v, ok := want[lp.GetName()]; ok && v != lp.GetValue() {
				match = false
			}
		}
		if match {
			return m.GetCounter().GetValue()
		}
	}

	return 0
}

func TestMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	h := newHandler(t, transport(t), provider.WithMetrics(provider.NewMetrics(reg)))
	s := view.NewSession()

	load(t, h, s, view.Count)
	cfg := load(t, h, s, view.Count)
	bad := s.NewConfig(view.Symbols)
	pair(5, 0)(bad)
	require.Error(t, h.LoadData(context.Background(), bad))

	loads := family(t, reg, "modelinspector_view_loads_total")
	require.Equal(t, 2.0, counter(loads, map[string]string{"view_type": "count", "result": "ok"}))
	require.Equal(t, 1.0, counter(loads, map[string]string{"view_type": "symbols", "result": "error"}))

	dur := family(t, reg, "modelinspector_view_load_duration_seconds")
	require.Len(t, dur.GetMetric(), 1, "failed loads record no duration")
	require.Equal(t, uint64(2), dur.GetMetric()[0].GetHistogram().GetSampleCount())

	cached := family(t, reg, "modelinspector_cached_views")
	require.Equal(t, 2.0, cached.GetMetric()[0].GetGauge().GetValue())

	h.Remove(cfg.ID)
	cached = family(t, reg, "modelinspector_cached_views")
	require.Equal(t, 1.0, cached.GetMetric()[0].GetGauge().GetValue())
}

func TestMetrics_Canceled(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	h := newHandler(t, scenario(t), provider.WithMetrics(provider.NewMetrics(reg)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, h.LoadData(ctx, view.NewSession().NewConfig(view.Average)), context.Canceled)
	loads := family(t, reg, "modelinspector_view_loads_total")
	require.Equal(t, 1.0, counter(loads, map[string]string{"view_type": "average", "result": "canceled"}))
}
