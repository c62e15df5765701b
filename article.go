package kagi

import "strings"

// Article is the readable part of an HTML document.
type Article struct {
	Title string

	// ContentHTML is the main content with navigation, footers and other
	// boilerplate removed.
	ContentHTML string
}

// ArticleExtractor isolates the main content of an HTML page.
type ArticleExtractor interface {
	ExtractArticle(html string) (*Article, error)
}

// MarkdownConverter renders HTML as Markdown.
type MarkdownConverter interface {
	// ConvertToMarkdown returns EINVALID for blank input.
	ConvertToMarkdown(html string) (string, error)
}

// ArticleText extracts the main content of an HTML page and renders it as
// Markdown headed by the page title, ready for a text-mode summary.
func ArticleText(html string, extractor ArticleExtractor, converter MarkdownConverter) (string, error) {
	article, err := extractor.ExtractArticle(html)
	if err != nil {
		return "", err
	}

	md, err := converter.ConvertToMarkdown(article.ContentHTML)
	if err != nil {
		return "", err
	}

	if article.Title == "" || strings.HasPrefix(md, "# "+article.Title) {
		return md, nil
	}
	return "# " + article.Title + "\n\n" + md, nil
}
