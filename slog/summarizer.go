package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingSummarizer implements pagesum.Summarizer.
var _ pagesum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   pagesum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next pagesum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs the provider, style and sizes of the exchange.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"provider", req.Provider,
			"style", req.Style,
			"language", req.Language,
			"text_chars", len([]rune(req.Text)),
			"summary_chars", len([]rune(summary)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
