package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *pagesum.SummaryRequest) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (string, error) {
	return s.SummarizeFn(ctx, req)
}
