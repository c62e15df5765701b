// Package readability isolates the readable article of a local HTML page
// before it is submitted to the summarizer.
package readability

import (
	"strings"

	"github.com/fwojciec/kagi"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements kagi.ArticleExtractor at compile time.
var _ kagi.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle returns the page title and its main content HTML.
// Pages readability cannot make sense of yield EINVALID.
func (e *Extractor) ExtractArticle(rawHTML string) (*kagi.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kagi.Errorf(kagi.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, kagi.Errorf(kagi.EINVALID, "Unable to extract article: %v", err)
	}

	return &kagi.Article{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
