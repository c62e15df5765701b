package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/kagi"
	"github.com/fwojciec/kagi/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ConvertToMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"headings", `<h1>Title</h1><h2>Subtitle</h2>`, []string{"# Title", "## Subtitle"}},
		{"links", `<p>Visit <a href="https://example.com">Example</a>.</p>`, []string{"[Example](https://example.com)"}},
		{"lists", `<ul><li>First</li><li>Second</li></ul>`, []string{"- First", "- Second"}},
		{"emphasis", `<p><strong>Bold</strong> and <em>italic</em></p>`, []string{"**Bold**", "*italic*"}},
		{"tables", `<table><thead><tr><th>Name</th></tr></thead><tbody><tr><td>Alice</td></tr></tbody></table>`, []string{"Name", "Alice", "|"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().ConvertToMarkdown(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}
}

func TestConverter_TrimsOutput(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().ConvertToMarkdown("\n<p>text</p>\n\n")

	require.NoError(t, err)
	assert.Equal(t, "text", md)
}

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := htmltomarkdown.NewConverter().ConvertToMarkdown(" \n")

	require.Error(t, err)
	assert.Equal(t, kagi.EINVALID, kagi.ErrorCode(err))
}
