package ingestion

import (
	"regexp"
	"strings"
)

const (
	defaultChunkSize    = 2000
	defaultChunkOverlap = 400
)

var nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]+`)
var whitespacePattern = regexp.MustCompile(`\s+`)

// cleanText strips garbled non-ASCII runs and collapses whitespace.
// Manual PDFs extract with a lot of both.
func cleanText(text string) string {
	text = nonASCIIPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// chunkText splits cleaned text into overlapping chunks of at most
// chunkSize characters, breaking on word boundaries where possible.
// Large chunks keep spec tables together; the overlap keeps figures
// that straddle a boundary retrievable from either side.
func chunkText(text string, chunkSize, overlap int) []string {
	text = cleanText(text)
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + chunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		// Break on the last word boundary inside the window
		cut := strings.LastIndex(text[start:end], " ")
		if cut <= 0 {
			cut = chunkSize
		}
		chunks = append(chunks, strings.TrimSpace(text[start:start+cut]))

		next := start + cut - overlap
		if next <= start {
			next = start + cut
		}
		start = next
	}
	return chunks
}
