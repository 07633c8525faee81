package review

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/autointel/ai/mock"
)

const articleBody = `<html><body>
<nav><a href="/">Home</a></nav>
<article>
<p>The 2025 BMW 5 Series delivers a composed ride with impressively direct steering and a cabin that feels properly built.</p>
<p>Under the hood the turbocharged inline-six makes 375 horsepower, enough for a 4.5-second run to 60 mph in our testing.</p>
<p>short one</p>
<p>Fuel economy came in at 28 mpg combined over our 200-mile loop, which is competitive for the luxury sedan class.</p>
</article>
<footer>Copyright</footer>
</body></html>`

// searchPage builds a web-search results page whose links point at the
// given article URLs. Links must contain an allow-listed domain name.
func searchPage(links ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i, link := range links {
		fmt.Fprintf(&sb, `<div class="g"><h3>Review article number %d with a title</h3><a href="%s">read</a></div>`, i+1, link)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func newTestReviewer(t *testing.T, generator *mock.MockGenerator, webURL, directURL string) *Reviewer {
	t.Helper()
	reviewer, err := NewReviewer(generator,
		WithPolitenessDelay(0),
		WithSearchURLs(webURL, directURL),
	)
	require.NoError(t, err)
	return reviewer
}

func TestNewReviewer(t *testing.T) {
	t.Run("nil generator", func(t *testing.T) {
		_, err := NewReviewer(nil)
		assert.Equal(t, ErrGeneratorRequired, err)
	})

	t.Run("default politeness delay", func(t *testing.T) {
		reviewer, err := NewReviewer(mock.NewMockGenerator())
		require.NoError(t, err)
		assert.Equal(t, defaultPolitenessDelay, reviewer.fetcher.delay)
	})
}

func TestAnswerSynthesizesFromArticles(t *testing.T) {
	articles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleBody))
	}))
	defer articles.Close()

	articleLink := articles.URL + "/caranddriver.com/bmw-5-series-review"
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage(articleLink, articles.URL+"/carwow.co.uk/bmw-5-series")))
	}))
	defer search.Close()

	var captured string
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "The 5 Series remains the benchmark luxury sedan.", nil
	}

	reviewer := newTestReviewer(t, generator, search.URL, "http://127.0.0.1:1")

	answer := reviewer.Answer(context.Background(), "2025 BMW 5 Series review")

	assert.Contains(t, captured, "375 horsepower")
	assert.Contains(t, captured, "=== Review 1:")
	assert.Contains(t, answer, "The 5 Series remains the benchmark luxury sedan.")
	assert.Contains(t, answer, "Sources:")
	assert.Contains(t, answer, articleLink)
	// Sub-threshold paragraphs don't make it into the context
	assert.NotContains(t, captured, "short one")
}

func TestAnswerPromptMatchesIntent(t *testing.T) {
	articles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleBody))
	}))
	defer articles.Close()

	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage(articles.URL + "/caranddriver.com/x5-vs-gle")))
	}))
	defer search.Close()

	var captured string
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "summary", nil
	}

	reviewer := newTestReviewer(t, generator, search.URL, "http://127.0.0.1:1")

	reviewer.Answer(context.Background(), "BMW X5 vs Mercedes GLE")
	assert.Contains(t, captured, "provide a comparison")

	reviewer.Answer(context.Background(), "best luxury SUV")
	assert.Contains(t, captured, "provide recommendations")

	reviewer.Answer(context.Background(), "2025 BMW X5")
	assert.Contains(t, captured, "comprehensive summary")
}

func TestAnswerLinkListWhenFetchFails(t *testing.T) {
	// Search finds candidates, but the article host is unreachable
	deadLink := "http://127.0.0.1:1/caranddriver.com/unreachable-review"
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage(deadLink, "http://127.0.0.1:1/carwow.co.uk/also-dead")))
	}))
	defer search.Close()

	generator := mock.NewMockGenerator()
	reviewer := newTestReviewer(t, generator, search.URL, "http://127.0.0.1:1")

	answer := reviewer.Answer(context.Background(), "Audi A4 review")

	assert.Contains(t, answer, "I found these relevant articles")
	assert.Contains(t, answer, deadLink)
	assert.Equal(t, 0, generator.CallCount(), "no synthesis without article content")
}

func TestAnswerLinkListNotCappedByFetchLimit(t *testing.T) {
	links := []string{
		"http://127.0.0.1:1/caranddriver.com/dead-review-one",
		"http://127.0.0.1:1/carwow.co.uk/dead-review-two",
		"http://127.0.0.1:1/caranddriver.com/dead-review-three",
		"http://127.0.0.1:1/carwow.co.uk/dead-review-four",
		"http://127.0.0.1:1/caranddriver.com/dead-review-five",
	}
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage(links...)))
	}))
	defer search.Close()

	reviewer := newTestReviewer(t, mock.NewMockGenerator(), search.URL, "http://127.0.0.1:1")

	answer := reviewer.Answer(context.Background(), "Audi A4 review")

	// Only the first three are fetched, but all five links are listed
	for _, link := range links {
		assert.Contains(t, answer, link)
	}
	assert.Contains(t, answer, "5. ")
}

func TestAnswerNoResults(t *testing.T) {
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>nothing here</body></html>"))
	}))
	defer search.Close()

	reviewer := newTestReviewer(t, mock.NewMockGenerator(), search.URL, search.URL)

	answer := reviewer.Answer(context.Background(), "flying car review")
	assert.Contains(t, answer, "I couldn't find specific reviews for 'flying car review'")
	assert.Contains(t, answer, "caranddriver.com/search?q=")
}

func TestDirectSearchFallback(t *testing.T) {
	articles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleBody))
	}))
	defer articles.Close()

	var directQuery string
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		directQuery = r.URL.Query().Get("q")
		fmt.Fprintf(w, `<html><body>
<a href="%s/reviews/giulia-road-test">Alfa Romeo Giulia road test results</a>
<a href="/reviews/too">short</a>
</body></html>`, articles.URL)
	}))
	defer direct.Close()

	// Web search returns nothing, forcing the direct strategy
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body></body></html>"))
	}))
	defer empty.Close()

	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "A sharp handling sports sedan.", nil
	}

	reviewer := newTestReviewer(t, generator, empty.URL, direct.URL)

	answer := reviewer.Answer(context.Background(), "Alfa Romeo Giulia review")

	assert.Equal(t, "alfa romeo giulia", directQuery, "review words scrubbed from direct query")
	assert.Contains(t, answer, "A sharp handling sports sedan.")
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  intent
	}{
		{"BMW X5 vs Mercedes GLE", intentComparison},
		{"compare the Civic and the Corolla", intentComparison},
		{"is the Golf better than the Focus", intentComparison},
		{"best luxury SUV", intentRecommendation},
		{"which car should i buy", intentRecommendation},
		{"recommend a reliable sedan", intentRecommendation},
		{"2025 BMW 5 Series review", intentGeneral},
		{"Ford Focus review", intentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIntent(tt.query))
		})
	}
}
