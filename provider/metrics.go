// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/modelinspector/view"
)

// Metrics are the Prometheus instruments of a Handler. A nil *Metrics
// records nothing.
type Metrics struct {
	loads    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cached   prometheus.Gauge
}

// NewMetrics registers the instruments with reg (prometheus.DefaultRegisterer
// when nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modelinspector",
			Name:      "view_loads_total",
			Help:      "View loads by view type and result.",
		}, []string{"view_type", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "modelinspector",
			Name:      "view_load_duration_seconds",
			Help:      "Time to compute one view.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"view_type"}),
		cached: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "modelinspector",
			Name:      "cached_views",
			Help:      "Views currently held in the cache.",
		}),
	}
}

func (m *Metrics) observe(t view.Type, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result = "canceled"
	case err != nil:
		result = "error"
	}
	m.loads.WithLabelValues(t.String(), result).Inc()
	if err == nil {
		m.duration.WithLabelValues(t.String()).Observe(d.Seconds())
	}
}

func (m *Metrics) setCached(n int) {
	if m == nil {
		return
	}
	m.cached.Set(float64(n))
}
