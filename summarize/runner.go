package summarize

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/pagesum"
	"github.com/google/uuid"
)

// Action runs one summarize action. *Orchestrator implements it.
type Action interface {
	Run(ctx context.Context, target string, cfg Config) pagesum.Result
}

var _ Action = (*Orchestrator)(nil)

// Runner runs actions as cancellable tasks. Triggering a new task cancels
// the one in flight, and only the latest task's result is rendered.
//
// Runner is safe for concurrent use.
type Runner struct {
	action   Action
	renderer pagesum.Renderer
	logger   *slog.Logger

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for task lifecycle records.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that renders the results of action.
func NewRunner(action Action, renderer pagesum.Renderer, opts ...RunnerOption) *Runner {
	r := &Runner{
		action:   action,
		renderer: renderer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Trigger starts a task for target and returns its ID. Any task still in
// flight is cancelled and its result will not be rendered.
func (r *Runner) Trigger(ctx context.Context, target string, cfg Config) string {
	id := uuid.NewString()
	taskCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.logger.Info("task cancelled", "task", r.current, "by", id)
		r.cancel()
	}
	r.current = id
	r.cancel = cancel
	r.mu.Unlock()

	r.logger.Info("task started", "task", id, "target", target, "provider", cfg.Provider)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()

		result := r.action.Run(taskCtx, target, cfg)
		r.finish(taskCtx, id, result)
	}()

	return id
}

// finish renders result if id is still the latest task.
func (r *Runner) finish(ctx context.Context, id string, result pagesum.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != r.current || ctx.Err() != nil {
		r.logger.Info("task result dropped", "task", id)
		return
	}
	r.cancel = nil

	if err := r.renderer.Render(result); err != nil {
		r.logger.Error("render failed", "task", id, "err", err)
		return
	}
	r.logger.Info("task finished", "task", id, "ok", result.OK())
}

// Cancel stops the task in flight, if any.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.logger.Info("task cancelled", "task", r.current)
		r.cancel()
		r.cancel = nil
	}
}

// Wait blocks until every started task has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}
