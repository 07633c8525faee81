// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package review

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/autointel/ai"
)

const (
	maxArticlesFetched = 3
	minArticleContent  = 200
	maxLinkListEntries = 5
)

// Reviewer searches review sites, extracts article content, and
// synthesizes a summary answering the user's question.
type Reviewer struct {
	generator ai.Generator
	searcher  *searcher
	fetcher   *fetcher
	logger    *slog.Logger
}

// ReviewerOption configures a Reviewer.
type ReviewerOption func(*Reviewer)

// WithPolitenessDelay sets the pause before each article fetch.
// Default is 1.5 seconds; tests set 0.
func WithPolitenessDelay(delay time.Duration) ReviewerOption {
	return func(r *Reviewer) {
		r.fetcher.delay = delay
	}
}

// WithSearchURLs overrides the search endpoints. Used in tests.
func WithSearchURLs(webSearchURL, directSearchURL string) ReviewerOption {
	return func(r *Reviewer) {
		if webSearchURL != "" {
			r.searcher.webSearchURL = webSearchURL
		}
		if directSearchURL != "" {
			r.searcher.directSearchURL = directSearchURL
		}
	}
}

// WithReviewerLogger sets a custom logger.
func WithReviewerLogger(logger *slog.Logger) ReviewerOption {
	return func(r *Reviewer) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		r.searcher.logger = logger
		r.fetcher.logger = logger
	}
}

// NewReviewer creates a reviewer.
func NewReviewer(generator ai.Generator, opts ...ReviewerOption) (*Reviewer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	logger := slog.Default().With("component", "review")
	r := &Reviewer{
		generator: generator,
		searcher:  newSearcher(logger),
		fetcher:   newFetcher(defaultPolitenessDelay, logger),
		logger:    logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Answer finds reviews matching the question and synthesizes a summary.
// Failures never propagate as errors; the caller always gets a
// user-facing string.
func (r *Reviewer) Answer(ctx context.Context, query string) string {
	candidates := r.searcher.search(ctx, query)
	if len(candidates) == 0 {
		return noResultsMessage(query)
	}

	// Only the fetch loop is capped; the link-list fallback lists up to
	// maxLinkListEntries of the full candidate set.
	fetchList := candidates
	if len(fetchList) > maxArticlesFetched {
		fetchList = fetchList[:maxArticlesFetched]
	}

	var articles []Article
	for _, candidate := range fetchList {
		content := r.fetcher.fetchArticleText(ctx, candidate.Link)
		if len(content) > minArticleContent {
			candidate.Content = content
			articles = append(articles, candidate)
		}
	}

	if len(articles) == 0 {
		r.logger.Debug("no article content extracted, listing links", "query", query)
		return formatLinkList(query, candidates)
	}

	prompt := buildSynthesisPrompt(query, formatArticleContext(query, articles), classifyIntent(query))
	summary, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn("review synthesis failed", "query", query, "err", err)
		return searchFallbackMessage(query)
	}

	return formatAnswer(query, strings.TrimSpace(summary), articles)
}

// formatArticleContext joins article bodies into a single prompt block.
func formatArticleContext(query string, articles []Article) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User asked about: %s\n\n", query)
	for i, article := range articles {
		fmt.Fprintf(&sb, "=== Review %d: %s (%s) ===\n", i+1, article.Title, article.Source)
		fmt.Fprintf(&sb, "%s\n\n", article.Content)
	}
	return sb.String()
}

// formatAnswer appends the source list to the synthesized summary.
func formatAnswer(query, summary string, articles []Article) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", summary)
	sb.WriteString("---\n\nSources:\n")
	for i, article := range articles {
		fmt.Fprintf(&sb, "%d. %s\n   (%s) - %s\n", i+1, article.Title, article.Source, article.Link)
	}
	return sb.String()
}

// formatLinkList lists the found articles when none could be read.
func formatLinkList(query string, candidates []Article) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reviews for '%s':\n\nI found these relevant articles:\n\n", query)

	listed := candidates
	if len(listed) > maxLinkListEntries {
		listed = listed[:maxLinkListEntries]
	}
	for i, candidate := range listed {
		fmt.Fprintf(&sb, "%d. %s\n   Source: %s\n   %s\n\n", i+1, candidate.Title, candidate.Source, candidate.Link)
	}
	sb.WriteString("Click the links above to read the full reviews.")
	return sb.String()
}

// noResultsMessage tells the user nothing was found and how to search manually.
func noResultsMessage(query string) string {
	return fmt.Sprintf(`I couldn't find specific reviews for '%s'.

Here's what you can try:
1. Search directly: https://www.caranddriver.com/search?q=%s
2. Try a different query (e.g., "2024 BMW 5 Series review")
3. Visit https://www.carwow.co.uk for UK reviews

Would you like me to help with something else about this car?`, query, url.QueryEscape(query))
}

// searchFallbackMessage points the user at a manual search.
func searchFallbackMessage(query string) string {
	return fmt.Sprintf("I encountered an error searching for '%s'. Please try: https://www.caranddriver.com/search?q=%s",
		query, url.QueryEscape(query))
}
