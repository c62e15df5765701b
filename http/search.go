package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/fwojciec/kagi"
)

// Search fetches the HTML results page for query and parses it.
func (c *Client) Search(ctx context.Context, query string) (*kagi.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, kagi.Errorf(kagi.EINVALID, "Search query is required")
	}

	u := c.baseURL.JoinPath("html", "search")
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	html, err := c.do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	})
	if err != nil {
		return nil, err
	}

	items, err := c.parser.ParseSearchResults(html)
	if err != nil {
		return nil, err
	}

	return &kagi.SearchResponse{Data: items}, nil
}
