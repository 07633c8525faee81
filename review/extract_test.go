package review

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

const longParagraph = "This paragraph is comfortably longer than the fifty character minimum used by the extractor."

func TestExtractArticleTextStrategies(t *testing.T) {
	t.Run("prefers article element", func(t *testing.T) {
		page := `<html><body>
<main><p>` + longParagraph + ` from main</p></main>
<article><p>` + longParagraph + ` from article</p></article>
</body></html>`

		text := extractArticleText(parsePage(t, page))
		assert.Contains(t, text, "from article")
		assert.NotContains(t, text, "from main")
	})

	t.Run("falls back to main", func(t *testing.T) {
		page := `<html><body><main><p>` + longParagraph + `</p></main></body></html>`
		text := extractArticleText(parsePage(t, page))
		assert.Contains(t, text, "fifty character minimum")
	})

	t.Run("falls back to role main", func(t *testing.T) {
		page := `<html><body><div role="main"><p>` + longParagraph + `</p></div></body></html>`
		text := extractArticleText(parsePage(t, page))
		assert.Contains(t, text, "fifty character minimum")
	})

	t.Run("falls back to content div", func(t *testing.T) {
		page := `<html><body><div class="post-content"><p>` + longParagraph + `</p></div></body></html>`
		text := extractArticleText(parsePage(t, page))
		assert.Contains(t, text, "fifty character minimum")
	})

	t.Run("no usable content", func(t *testing.T) {
		page := `<html><body><p>too short</p></body></html>`
		assert.Equal(t, "", extractArticleText(parsePage(t, page)))
	})
}

func TestExtractArticleTextStripsChrome(t *testing.T) {
	page := `<html><body><article>
<script>var tracking = "do not include tracking code";</script>
<p>` + longParagraph + `</p>
</article></body></html>`

	text := extractArticleText(parsePage(t, page))
	assert.NotContains(t, text, "tracking")
	assert.Contains(t, text, "fifty character minimum")
}

func TestExtractArticleTextCapsLength(t *testing.T) {
	paragraph := "<p>" + strings.Repeat("word ", 200) + "end of paragraph text</p>"
	page := "<html><body><article>" + strings.Repeat(paragraph, 5) + "</article></body></html>"

	text := extractArticleText(parsePage(t, page))
	assert.LessOrEqual(t, len(text), maxContentLength)
}

func TestExtractArticleTextCapKeepsValidUTF8(t *testing.T) {
	// The single leading byte shifts every "é" onto an odd offset, so a
	// byte-indexed cap would land inside a rune.
	paragraph := "<p>x" + strings.Repeat("é", 1200) + "</p>"
	page := "<html><body><article>" + paragraph + "</article></body></html>"

	text := extractArticleText(parsePage(t, page))
	assert.LessOrEqual(t, len(text), maxContentLength)
	assert.True(t, utf8.ValidString(text))
	assert.True(t, strings.HasSuffix(text, "é"))
}

func TestExtractArticleTextCollapsesWhitespace(t *testing.T) {
	page := `<html><body><article><p>This     text    has

irregular   spacing but is still longer than fifty characters total.</p></article></body></html>`

	text := extractArticleText(parsePage(t, page))
	assert.NotContains(t, text, "  ")
	assert.Contains(t, text, "This text has irregular spacing")
}
