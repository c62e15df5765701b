package kagi

import (
	"context"
	"encoding/json"
)

// ItemKind discriminates the entries of a SearchResponse. It serializes as
// the numeric "t" field used by the Kagi Search API.
type ItemKind int

// ItemKind values.
const (
	KindResult  ItemKind = 0
	KindRelated ItemKind = 1
)

// SearchItem is one entry of a search response: either a *SearchResult or a
// *RelatedSearches. The set is closed.
type SearchItem interface {
	Kind() ItemKind
	searchItem()
}

// SearchResult is a single organic result. URL and Title are never empty;
// Snippet is empty when the page carries no description.
type SearchResult struct {
	URL     string
	Title   string
	Snippet string
}

// Kind returns KindResult.
func (*SearchResult) Kind() ItemKind { return KindResult }

func (*SearchResult) searchItem() {}

// MarshalJSON encodes the result in the Kagi API shape.
func (r *SearchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		T       ItemKind `json:"t"`
		URL     string   `json:"url"`
		Title   string   `json:"title"`
		Snippet string   `json:"snippet"`
	}{KindResult, r.URL, r.Title, r.Snippet})
}

// RelatedSearches holds the suggested follow-up queries in document order.
// It is only produced when Terms is non-empty.
type RelatedSearches struct {
	Terms []string
}

// Kind returns KindRelated.
func (*RelatedSearches) Kind() ItemKind { return KindRelated }

func (*RelatedSearches) searchItem() {}

// MarshalJSON encodes the related searches in the Kagi API shape.
func (r *RelatedSearches) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		T    ItemKind `json:"t"`
		List []string `json:"list"`
	}{KindRelated, r.Terms})
}

// SearchResponse is the ordered outcome of a search: primary results, then
// grouped results, then the related searches entry (if any) last.
type SearchResponse struct {
	Data []SearchItem `json:"data"`
}

// Results returns only the organic results, in order.
func (r *SearchResponse) Results() []*SearchResult {
	var out []*SearchResult
	for _, item := range r.Data {
		if res, ok := item.(*SearchResult); ok {
			out = append(out, res)
		}
	}
	return out
}

// Related returns the related search terms, or nil if the page had none.
func (r *SearchResponse) Related() []string {
	if n := len(r.Data); n > 0 {
		if rel, ok := r.Data[n-1].(*RelatedSearches); ok {
			return rel.Terms
		}
	}
	return nil
}

// Searcher runs a search query against Kagi.
type Searcher interface {
	// Search returns the parsed results page for query.
	// Returns EINVALID for an empty query and EUNAUTHORIZED for a rejected token.
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// SearchParser turns a raw search results page into a SearchResponse.
type SearchParser interface {
	ParseSearchResults(html string) ([]SearchItem, error)
}
