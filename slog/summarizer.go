package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kagi"
)

// Ensure LoggingSummarizer implements kagi.Summarizer.
var _ kagi.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging. The input itself is
// not logged, only its size.
type LoggingSummarizer struct {
	next   kagi.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next kagi.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, input string, opts kagi.SummaryOptions) (result *kagi.SummaryResult, err error) {
	defer func(begin time.Time) {
		var output int
		if result != nil {
			output = len(result.Output)
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "summarize",
			"mode", opts.Mode,
			"type", opts.Type,
			"language", opts.Language,
			"input_bytes", len(input),
			"output_bytes", output,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, input, opts)
}
