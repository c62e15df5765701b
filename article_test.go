package kagi_test

import (
	"testing"

	"github.com/fwojciec/kagi"
	"github.com/fwojciec/kagi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleText(t *testing.T) {
	t.Parallel()

	converter := &mock.MarkdownConverter{
		ConvertToMarkdownFn: func(html string) (string, error) {
			return "converted " + html, nil
		},
	}

	t.Run("prefixes the title", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.ArticleExtractor{
			ExtractArticleFn: func(html string) (*kagi.Article, error) {
				assert.Equal(t, "<html>raw</html>", html)
				return &kagi.Article{Title: "Cats", ContentHTML: "<p>body</p>"}, nil
			},
		}

		text, err := kagi.ArticleText("<html>raw</html>", extractor, converter)

		require.NoError(t, err)
		assert.Equal(t, "# Cats\n\nconverted <p>body</p>", text)
	})

	t.Run("does not repeat a title the content already starts with", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.ArticleExtractor{
			ExtractArticleFn: func(string) (*kagi.Article, error) {
				return &kagi.Article{Title: "Cats", ContentHTML: "<h1>Cats</h1>"}, nil
			},
		}
		conv := &mock.MarkdownConverter{
			ConvertToMarkdownFn: func(string) (string, error) { return "# Cats\n\ntext", nil },
		}

		text, err := kagi.ArticleText("x", extractor, conv)

		require.NoError(t, err)
		assert.Equal(t, "# Cats\n\ntext", text)
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.ArticleExtractor{
			ExtractArticleFn: func(string) (*kagi.Article, error) {
				return nil, kagi.Errorf(kagi.EINVALID, "empty HTML input")
			},
		}

		_, err := kagi.ArticleText("", extractor, converter)

		assert.Equal(t, kagi.EINVALID, kagi.ErrorCode(err))
	})
}
