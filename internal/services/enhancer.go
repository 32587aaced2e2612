package services

import "strings"

const (
	enhancePreamble = "You are an expert AI assistant. Please provide a detailed, accurate, and helpful response to the following query. Be specific, include examples where appropriate, and structure your response clearly.\n\n"

	enhanceQueryMarker = "Query: "

	enhanceChecklist = "\n\nPlease ensure your response is:\n" +
		"- Accurate and well-researched\n" +
		"- Clear and easy to understand\n" +
		"- Includes practical examples if relevant\n" +
		"- Structured with proper formatting\n" +
		"- Comprehensive yet concise"
)

// EnhancePrompt wraps a raw user prompt with the fixed instructional preamble
// and closing checklist. When a category is provided, one extra sentence
// naming it is inserted ahead of the query marker. Deterministic, no side
// effects.
func EnhancePrompt(prompt, category string) string {
	var b strings.Builder
	b.WriteString(enhancePreamble)
	if strings.TrimSpace(category) != "" {
		b.WriteString("This question relates to the category: ")
		b.WriteString(category)
		b.WriteString(".\n\n")
	}
	b.WriteString(enhanceQueryMarker)
	b.WriteString(prompt)
	b.WriteString(enhanceChecklist)
	return b.String()
}
