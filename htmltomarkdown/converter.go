// Package htmltomarkdown renders extracted article HTML as Markdown, the
// text form submitted to the summarizer.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/kagi"
)

// Ensure Converter implements kagi.MarkdownConverter at compile time.
var _ kagi.MarkdownConverter = (*Converter)(nil)

// Converter wraps html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with CommonMark and table support.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// ConvertToMarkdown returns the trimmed Markdown for html.
func (c *Converter) ConvertToMarkdown(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", kagi.Errorf(kagi.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", kagi.Errorf(kagi.EINVALID, "Unable to convert HTML: %v", err)
	}

	return strings.TrimSpace(md), nil
}
