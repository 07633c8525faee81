// Package review synthesizes car review summaries from a small set of
// allow-listed publications.
//
// The Reviewer runs a two-stage search (web search restricted to the
// allow-listed domains, then the publication's own site search when that
// comes up short), fetches up to three candidate articles with a
// politeness delay between requests, extracts their body text, and asks
// the chat model for a summary shaped to the question: comparison,
// recommendation, or general review. Every failure path degrades to a
// useful string — a link list when articles can't be read, a manual
// search URL when nothing else works — and never to an error.
package review
