package review

import "fmt"

const comparisonPromptTemplate = `Based on these car reviews, provide a comparison for: "%s"

%s

Create a comprehensive comparison including:
1. Brief overview of each car
2. Key differences
3. Pros and cons of each
4. Which is better for different use cases
5. Final recommendation

Keep it conversational and helpful (400 words max).`

const recommendationPromptTemplate = `Based on these reviews, provide recommendations for: "%s"

%s

Provide:
1. Overview of top options
2. Key features and strengths
3. Who each option is best for
4. Your recommendation

Keep it helpful and conversational (400 words max).`

const generalPromptTemplate = `Based on these car reviews, create a comprehensive summary for: "%s"

%s

Include:
1. Overview and key highlights
2. Main strengths and weaknesses
3. Performance, features, and value
4. Who this car is best for
5. Final verdict

Keep it conversational and informative (400 words max).`

// buildSynthesisPrompt formats the template matching the question's intent.
func buildSynthesisPrompt(query, context string, kind intent) string {
	switch kind {
	case intentComparison:
		return fmt.Sprintf(comparisonPromptTemplate, query, context)
	case intentRecommendation:
		return fmt.Sprintf(recommendationPromptTemplate, query, context)
	default:
		return fmt.Sprintf(generalPromptTemplate, query, context)
	}
}
