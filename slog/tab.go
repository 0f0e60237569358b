package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingTabSource implements pagesum.TabSource.
var _ pagesum.TabSource = (*LoggingTabSource)(nil)

// LoggingTabSource wraps a TabSource so that it and the tabs it opens log
// each step.
type LoggingTabSource struct {
	next   pagesum.TabSource
	logger *slog.Logger
}

// NewLoggingTabSource creates a new LoggingTabSource.
func NewLoggingTabSource(next pagesum.TabSource, logger *slog.Logger) *LoggingTabSource {
	return &LoggingTabSource{next: next, logger: logger}
}

// ActiveTab logs tab resolution and wraps the returned tab.
func (s *LoggingTabSource) ActiveTab(ctx context.Context, target string) (tab pagesum.Tab, err error) {
	defer func(begin time.Time) {
		s.logger.Info("resolve tab",
			"target", target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	tab, err = s.next.ActiveTab(ctx, target)
	if err != nil {
		return nil, err
	}
	return &loggingTab{next: tab, logger: s.logger.With("url", tab.URL())}, nil
}

type loggingTab struct {
	next   pagesum.Tab
	logger *slog.Logger
}

func (t *loggingTab) URL() string {
	return t.next.URL()
}

func (t *loggingTab) Inject(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		t.logger.Info("inject",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Inject(ctx)
}

func (t *loggingTab) Send(ctx context.Context, msg pagesum.Message) (resp *pagesum.Response, err error) {
	defer func(begin time.Time) {
		chars := 0
		if resp != nil && resp.Text != nil {
			chars = len([]rune(*resp.Text))
		}
		t.logger.Info("message",
			"type", msg.Type,
			"text_chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Send(ctx, msg)
}

func (t *loggingTab) Close() error {
	return t.next.Close()
}
