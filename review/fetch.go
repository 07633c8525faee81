package review

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html"
)

const (
	defaultFetchTimeout = 15 * time.Second

	// defaultPolitenessDelay is the pause before each article fetch.
	defaultPolitenessDelay = 1500 * time.Millisecond
)

// fetcher downloads article pages and extracts their body text.
type fetcher struct {
	httpClient *http.Client
	delay      time.Duration
	logger     *slog.Logger
}

func newFetcher(delay time.Duration, logger *slog.Logger) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
		delay:      delay,
		logger:     logger,
	}
}

// fetchArticleText downloads a page and returns its extracted body text.
// Returns "" on any failure; article fetching is best-effort.
func (f *fetcher) fetchArticleText(ctx context.Context, pageURL string) string {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ""
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		f.logger.Debug("bad article url", "url", pageURL, "err", err)
		return ""
	}
	applyBrowserHeaders(req)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Debug("article fetch failed", "url", pageURL, "err", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("article fetch rejected", "url", pageURL, "status", resp.StatusCode)
		return ""
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		f.logger.Debug("article parse failed", "url", pageURL, "err", err)
		return ""
	}

	return extractArticleText(doc)
}
