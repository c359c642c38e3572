// SPDX-License-Identifier: MIT

package provider

import (
	"log/slog"

	"github.com/katalvlaran/modelinspector/model"
)

// DefaultConcurrency bounds the views a Loader computes at the same time.
const DefaultConcurrency = 4

// Option configures a Handler.
type Option func(*Options)

// Options is the effective Handler configuration.
type Options struct {
	logger      *slog.Logger
	metrics     *Metrics
	special     *model.SpecialValues // nil: ask the instance
	concurrency int
}

// WithLogger sets the logger. The default drops everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records load counts and durations in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithSpecialValues overrides the instance's sentinel set.
func WithSpecialValues(sv model.SpecialValues) Option {
	return func(o *Options) { o.special = &sv }
}

// WithConcurrency sets how many views a Loader computes in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
