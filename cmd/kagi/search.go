package main

import (
	"github.com/fwojciec/kagi"
	"golang.org/x/sync/errgroup"
)

// QueryResponse is one entry of the output when several queries are given.
type QueryResponse struct {
	Query string            `json:"query"`
	Data  []kagi.SearchItem `json:"data"`
}

// Run executes the search command. A single query prints {"data": [...]};
// several queries print one QueryResponse per query, in argument order.
// Nothing is printed unless every search succeeds.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if len(c.Queries) == 1 {
		resp, err := deps.Searcher.Search(deps.Ctx, c.Queries[0])
		if err != nil {
			return err
		}
		return writeJSON(deps.Stdout, resp)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	responses := make([]QueryResponse, len(c.Queries))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, query := range c.Queries {
		g.Go(func() error {
			resp, err := deps.Searcher.Search(gctx, query)
			if err != nil {
				return err
			}
			responses[i] = QueryResponse{Query: query, Data: resp.Data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeJSON(deps.Stdout, responses)
}
