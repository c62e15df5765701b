// Package goquery parses Kagi search result pages with goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kagi"
)

// ParseErrorMessage is the message of the EPARSE error returned when the
// page cannot be traversed.
const ParseErrorMessage = "Failed to parse search results - unexpected HTML structure"

// RelatedSearchesSelector matches one related search term per element.
const RelatedSearchesSelector = ".related-searches a span"

// ResultStrategy describes where a result's fields live for one kind of
// result node. Every strategy yields the same kagi.SearchResult shape.
type ResultStrategy struct {
	Name string

	// Node selects the result nodes in the document.
	Node string

	// TitleLink selects the anchor whose text is the title and whose
	// href is the URL. The first match inside the node is used.
	TitleLink string

	// Snippet selects the description. The first match inside the node is used.
	Snippet string
}

// Result strategies, in the order their results appear in a response.
var (
	PrimaryResults = ResultStrategy{
		Name:      "primary",
		Node:      ".search-result",
		TitleLink: ".__sri_title_link",
		Snippet:   ".__sri-desc",
	}
	GroupedResults = ResultStrategy{
		Name:      "grouped",
		Node:      ".sr-group .__srgi",
		TitleLink: ".__srgi-title a",
		Snippet:   ".__sri-desc",
	}
)

// Extract builds a result from a single node. It reports false when the
// node has no title or URL, or when probing the node fails; one bad node
// never affects its siblings.
func (s ResultStrategy) Extract(node *goquery.Selection) (result *kagi.SearchResult, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()

	link := node.Find(s.TitleLink).First()
	title := strings.TrimSpace(link.Text())
	href, exists := link.Attr("href")
	href = strings.TrimSpace(href)
	if title == "" || !exists || href == "" {
		return nil, false
	}

	return &kagi.SearchResult{
		URL:     href,
		Title:   title,
		Snippet: strings.TrimSpace(node.Find(s.Snippet).First().Text()),
	}, true
}

// ExtractAll applies the strategy to every matching node of doc, in
// document order, skipping nodes that yield no result.
func (s ResultStrategy) ExtractAll(doc *goquery.Document) []*kagi.SearchResult {
	var results []*kagi.SearchResult
	doc.Find(s.Node).Each(func(_ int, node *goquery.Selection) {
		if result, ok := s.Extract(node); ok {
			results = append(results, result)
		}
	})
	return results
}

// ExtractRelatedSearches returns the non-empty related search terms in
// document order. Duplicates are kept. A page without the block, or one
// that cannot be probed, yields nil.
func ExtractRelatedSearches(doc *goquery.Document) (terms []string) {
	defer func() {
		if recover() != nil {
			terms = nil
		}
	}()

	doc.Find(RelatedSearchesSelector).Each(func(_ int, sel *goquery.Selection) {
		if term := strings.TrimSpace(sel.Text()); term != "" {
			terms = append(terms, term)
		}
	})
	return terms
}

// Ensure Parser implements kagi.SearchParser at compile time.
var _ kagi.SearchParser = (*Parser)(nil)

// Parser parses Kagi search result pages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseSearchResults parses a results page held in memory.
func (p *Parser) ParseSearchResults(html string) ([]kagi.SearchItem, error) {
	return ParseSearchResults(strings.NewReader(html))
}

// ParseSearchResults reads a results page and returns primary results,
// then grouped results, then a single related searches entry if the page
// has any terms. The returned slice is never nil on success.
// Returns EPARSE if the document itself cannot be read or traversed.
func ParseSearchResults(r io.Reader) (items []kagi.SearchItem, err error) {
	defer func() {
		if recover() != nil {
			items, err = nil, kagi.Errorf(kagi.EPARSE, ParseErrorMessage)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, kagi.Errorf(kagi.EPARSE, ParseErrorMessage)
	}

	items = []kagi.SearchItem{}
	for _, strategy := range []ResultStrategy{PrimaryResults, GroupedResults} {
		for _, result := range strategy.ExtractAll(doc) {
			items = append(items, result)
		}
	}

	if terms := ExtractRelatedSearches(doc); len(terms) > 0 {
		items = append(items, &kagi.RelatedSearches{Terms: terms})
	}

	return items, nil
}
