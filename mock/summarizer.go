package mock

import (
	"context"

	"github.com/fwojciec/kagi"
)

var _ kagi.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of kagi.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, input string, opts kagi.SummaryOptions) (*kagi.SummaryResult, error)
}

func (s *Summarizer) Summarize(ctx context.Context, input string, opts kagi.SummaryOptions) (*kagi.SummaryResult, error) {
	return s.SummarizeFn(ctx, input, opts)
}
