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
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	defaultWebSearchURL    = "https://www.google.com/search"
	defaultDirectSearchURL = "https://www.caranddriver.com/search"

	maxWebSearchResults    = 5
	maxDirectSearchResults = 10
	minDirectTitleLength   = 15
)

var articlePathPattern = regexp.MustCompile(`/(reviews?|cars?|news)/`)

var scrubTermsPattern = regexp.MustCompile(`\b(review|reviews?|test|comparison)\b`)

// searcher finds review article candidates on the allow-listed sites.
type searcher struct {
	httpClient      *http.Client
	webSearchURL    string
	directSearchURL string
	logger          *slog.Logger
}

func newSearcher(logger *slog.Logger) *searcher {
	return &searcher{
		httpClient:      &http.Client{Timeout: defaultFetchTimeout},
		webSearchURL:    defaultWebSearchURL,
		directSearchURL: defaultDirectSearchURL,
		logger:          logger,
	}
}

// search runs the web search first and falls back to the direct site
// search when it yields fewer than two candidates. Results are deduped
// by link. Never returns an error; an empty slice means nothing found.
func (s *searcher) search(ctx context.Context, query string) []Article {
	results := s.webSearch(ctx, query)

	if len(results) < 2 {
		results = append(results, s.directSearch(ctx, query)...)
	}

	return dedupeByLink(results)
}

// webSearch scrapes a web search restricted to the allow-listed domains.
func (s *searcher) webSearch(ctx context.Context, query string) []Article {
	params := url.Values{}
	params.Set("q", query+" car review site:caranddriver.com OR site:carwow.co.uk")

	doc, ok := s.getPage(ctx, s.webSearchURL+"?"+params.Encode())
	if !ok {
		return nil
	}

	isResultBlock := func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" && hasAttrContaining("class", "g")(n)
	}
	blocks := findElements(doc, isResultBlock, maxWebSearchResults)

	var results []Article
	for _, block := range blocks {
		title := ""
		if h3 := findFirstElement(block, isTag("h3")); h3 != nil {
			title = strings.TrimSpace(nodeText(h3))
		}
		if title == "" {
			continue
		}

		anchor := findFirstElement(block, isAnchorWithHref)
		if anchor == nil {
			continue
		}
		link := cleanRedirectURL(attrValue(anchor, "href"))

		switch {
		case strings.Contains(link, "caranddriver.com"):
			results = append(results, Article{Title: title, Link: link, Source: "Car and Driver"})
		case strings.Contains(link, "carwow.co.uk"):
			results = append(results, Article{Title: title, Link: link, Source: "Carwow"})
		}
	}

	s.logger.Debug("web search complete", "query", query, "results", len(results))
	return results
}

// directSearch queries the Car and Driver site search directly.
// The query is scrubbed of generic review words first.
func (s *searcher) directSearch(ctx context.Context, query string) []Article {
	scrubbed := strings.TrimSpace(scrubTermsPattern.ReplaceAllString(strings.ToLower(query), ""))

	params := url.Values{}
	params.Set("q", scrubbed)

	doc, ok := s.getPage(ctx, s.directSearchURL+"?"+params.Encode())
	if !ok {
		return nil
	}

	anchors := findElements(doc, isArticleAnchor, maxDirectSearchResults)

	seen := make(map[string]bool)
	var results []Article
	for _, anchor := range anchors {
		href := attrValue(anchor, "href")
		if strings.HasPrefix(href, "/") {
			href = "https://www.caranddriver.com" + href
		}
		if seen[href] {
			continue
		}
		seen[href] = true

		title := strings.TrimSpace(nodeText(anchor))
		if len(title) < minDirectTitleLength || isGenericTitle(title) {
			continue
		}

		results = append(results, Article{Title: title, Link: href, Source: "Car and Driver"})
	}

	s.logger.Debug("direct search complete", "query", scrubbed, "results", len(results))
	return results
}

// getPage fetches and parses an HTML page with browser headers.
func (s *searcher) getPage(ctx context.Context, pageURL string) (*html.Node, bool) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		s.logger.Debug("bad search url", "url", pageURL, "err", err)
		return nil, false
	}
	applyBrowserHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("search request failed", "url", pageURL, "err", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("search request rejected", "url", pageURL, "status", resp.StatusCode)
		return nil, false
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		s.logger.Debug("search parse failed", "url", pageURL, "err", err)
		return nil, false
	}
	return doc, true
}

// cleanRedirectURL unwraps search-engine redirect links.
func cleanRedirectURL(link string) string {
	if idx := strings.Index(link, "/url?q="); idx >= 0 {
		link = link[idx+len("/url?q="):]
		if amp := strings.Index(link, "&"); amp >= 0 {
			link = link[:amp]
		}
		if unescaped, err := url.QueryUnescape(link); err == nil {
			link = unescaped
		}
	}
	return link
}

func isGenericTitle(title string) bool {
	switch strings.ToLower(title) {
	case "read more", "see more", "learn more":
		return true
	}
	return false
}

func isAnchorWithHref(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "a" && attrValue(n, "href") != ""
}

func isArticleAnchor(n *html.Node) bool {
	return isAnchorWithHref(n) && articlePathPattern.MatchString(attrValue(n, "href"))
}

// hasAttrContaining matches elements whose attribute contains value as a
// whitespace-separated token.
func hasAttrContaining(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key != key {
				continue
			}
			for _, token := range strings.Fields(attr.Val) {
				if token == value {
					return true
				}
			}
		}
		return false
	}
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
