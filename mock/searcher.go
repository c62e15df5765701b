package mock

import (
	"context"

	"github.com/fwojciec/kagi"
)

var _ kagi.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of kagi.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*kagi.SearchResponse, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*kagi.SearchResponse, error) {
	return s.SearchFn(ctx, query)
}

var _ kagi.SearchParser = (*SearchParser)(nil)

// SearchParser is a mock implementation of kagi.SearchParser.
type SearchParser struct {
	ParseSearchResultsFn func(html string) ([]kagi.SearchItem, error)
}

func (p *SearchParser) ParseSearchResults(html string) ([]kagi.SearchItem, error) {
	return p.ParseSearchResultsFn(html)
}
