// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/modelinspector/view"
)

// Loader computes a batch of views in the background.
//
// Cancellation is cooperative: it is checked before the Jacobian stage and
// before each view starts. A view that has started runs to completion and is
// installed.
type Loader struct {
	handler *Handler
	limit   int
}

// NewLoader returns a Loader for h using the handler's concurrency setting.
func NewLoader(h *Handler) *Loader {
	return &Loader{handler: h, limit: h.opts.concurrency}
}

// Run loads the Jacobian, then every cfg in parallel. Views with an active
// aggregation go through Aggregate, the rest through LoadData. The first
// error cancels the views that have not started yet.
func (l *Loader) Run(ctx context.Context, cfgs ...*view.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.handler.LoadJacobian(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for _, cfg := range cfgs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if cfg != nil && cfg.Aggregation.Active() {
				return l.handler.Aggregate(gctx, cfg)
			}
			return l.handler.LoadData(gctx, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// Task is a running background load.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	err    error
}

// Start runs Run on a new goroutine and returns a handle to it.
func (l *Loader) Start(ctx context.Context, cfgs ...*view.Config) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		t.err = l.Run(ctx, cfgs...)
	}()

	return t
}

// Cancel asks the task to stop before its next stage. It does not wait.
func (t *Task) Cancel() { t.once.Do(t.cancel) }

// Done is closed when the task has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes or ctx is done and returns the task's
// error (or ctx.Err()).
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
