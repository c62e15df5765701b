package mock

import "github.com/fwojciec/kagi"

var _ kagi.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of kagi.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string) (*kagi.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(html string) (*kagi.Article, error) {
	return e.ExtractArticleFn(html)
}

var _ kagi.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of kagi.MarkdownConverter.
type MarkdownConverter struct {
	ConvertToMarkdownFn func(html string) (string, error)
}

func (c *MarkdownConverter) ConvertToMarkdown(html string) (string, error) {
	return c.ConvertToMarkdownFn(html)
}
