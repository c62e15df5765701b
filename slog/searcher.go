// Package slog provides log/slog decorators for the kagi service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kagi"
)

// Ensure LoggingSearcher implements kagi.Searcher.
var _ kagi.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   kagi.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next kagi.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the result counts.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (resp *kagi.SearchResponse, err error) {
	defer func(begin time.Time) {
		var results, related int
		if resp != nil {
			results, related = len(resp.Results()), len(resp.Related())
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "search",
			"query", query,
			"results", results,
			"related", related,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
