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
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	maxParagraphsPerBlock = 10
	minParagraphLength    = 50
	maxContentLength      = 2000
	maxContentDivs        = 3
)

// strippedTags are removed before content extraction.
var strippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"iframe":   true,
	"noscript": true,
}

var contentClassPattern = regexp.MustCompile(`(?i)(content|body|article|post)`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// extractArticleText pulls the main body text out of an article page.
// Returns "" when no usable content is found.
//
// Extraction tries three strategies in order: an <article> element, then
// <main> or role="main", then divs whose class looks like a content
// container. Only paragraphs longer than minParagraphLength count, and
// the result is capped at maxContentLength characters.
func extractArticleText(doc *html.Node) string {
	pruneStrippedTags(doc)

	var content string

	if article := findFirstElement(doc, isTag("article")); article != nil {
		content = collectParagraphs(article)
	}

	if content == "" {
		main := findFirstElement(doc, isTag("main"))
		if main == nil {
			main = findFirstElement(doc, hasAttr("role", "main"))
		}
		if main != nil {
			content = collectParagraphs(main)
		}
	}

	if content == "" {
		divs := findElements(doc, isContentDiv, maxContentDivs)
		for _, div := range divs {
			candidate := collectParagraphs(div)
			if len(candidate) > len(content) {
				content = candidate
			}
		}
	}

	if content == "" {
		return ""
	}

	content = cleanText(content)
	if len(content) > maxContentLength {
		cut := maxContentLength
		// Back up so the cap never splits a multi-byte rune
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}
	return content
}

// pruneStrippedTags removes script/style/chrome elements in place.
func pruneStrippedTags(node *html.Node) {
	child := node.FirstChild
	for child != nil {
		next := child.NextSibling
		if child.Type == html.ElementNode && strippedTags[child.Data] {
			node.RemoveChild(child)
		} else {
			pruneStrippedTags(child)
		}
		child = next
	}
}

// collectParagraphs joins the node's first qualifying <p> texts.
func collectParagraphs(node *html.Node) string {
	paragraphs := findElements(node, isTag("p"), maxParagraphsPerBlock)

	var parts []string
	for _, p := range paragraphs {
		text := strings.TrimSpace(nodeText(p))
		if len(text) > minParagraphLength {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// nodeText returns the concatenated text content of a node.
func nodeText(node *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}

// cleanText collapses runs of whitespace.
func cleanText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

func isTag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

func hasAttr(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key == key && attr.Val == value {
				return true
			}
		}
		return false
	}
}

func isContentDiv(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "div" {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && contentClassPattern.MatchString(attr.Val) {
			return true
		}
	}
	return false
}

// findFirstElement returns the first node matching the predicate, depth-first.
func findFirstElement(node *html.Node, match func(*html.Node) bool) *html.Node {
	if match(node) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirstElement(child, match); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns up to limit nodes matching the predicate, depth-first.
func findElements(node *html.Node, match func(*html.Node) bool, limit int) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= limit {
			return
		}
		if match(n) {
			results = append(results, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return results
}
