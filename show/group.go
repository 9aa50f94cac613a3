package show

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Group runs the show's perpetual tasks and stops them together: the
// first task failure cancels every other task. A task that returns the
// group's own cancellation is a clean stop, not a failure.
type Group struct {
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu  sync.Mutex
	err error
}

// NewGroup derives a cancellable context from parent and prepares an
// empty group. A nil logger falls back to slog.Default().
func NewGroup(parent context.Context, logger *slog.Logger) *Group {
	if parent == nil {
		parent = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Group{logger: logger, ctx: ctx, cancel: cancel}
}

// Go starts task in its own goroutine under the group's context. The
// task runs until the context ends or it returns; a non-cancellation
// error is recorded and brings the rest of the group down.
func (g *Group) Go(name string, task func(ctx context.Context) error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.logger.Debug("task started", slog.String("task", name))
		if err := task(g.ctx); err != nil && !errors.Is(err, context.Canceled) {
			g.logger.Error("task failed", slog.String("task", name), slog.Any("err", err))
			g.mu.Lock()
			if g.err == nil {
				g.err = fmt.Errorf("show: task %s: %w", name, err)
			}
			g.mu.Unlock()
			g.cancel()
			return
		}
		g.logger.Debug("task stopped", slog.String("task", name))
	}()
}

// Wait blocks until every task has returned and reports the first
// failure, if any.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// Stop cancels the group and drains it.
func (g *Group) Stop() error {
	g.cancel()
	return g.Wait()
}
