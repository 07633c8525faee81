package review

import "strings"

// intent is the shape of the review question, used to pick a prompt template.
type intent int

const (
	intentGeneral intent = iota
	intentComparison
	intentRecommendation
)

var comparisonTokens = map[string]bool{
	"vs": true, "vs.": true, "versus": true, "or": true, "better": true,
}

var recommendationTokens = map[string]bool{
	"best": true, "which": true, "top": true,
}

// classifyIntent detects whether the question asks for a comparison, a
// recommendation, or a general review. Single words match as whole tokens
// so "or" doesn't fire inside "Ford".
func classifyIntent(query string) intent {
	lowered := strings.ToLower(query)
	tokens := strings.Fields(lowered)

	for _, token := range tokens {
		if comparisonTokens[strings.Trim(token, ",?!")] {
			return intentComparison
		}
	}
	if strings.Contains(lowered, "compare") {
		return intentComparison
	}

	for _, token := range tokens {
		if recommendationTokens[strings.Trim(token, ",?!")] {
			return intentRecommendation
		}
	}
	if strings.Contains(lowered, "recommend") || strings.Contains(lowered, "should i") {
		return intentRecommendation
	}

	return intentGeneral
}
