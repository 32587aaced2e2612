package repository

import (
	"sort"
	"strings"

	"deepchat-backend/internal/models"
)

// TemplateRepo is a read-only, in-memory store of prompt templates. The
// catalog is fixed at startup, so reads need no locking.
type TemplateRepo struct {
	templates []models.PromptTemplate
}

var categoryIcons = map[string]string{
	"Code Analysis":   "fas fa-code",
	"Problem Solving": "fas fa-puzzle-piece",
	"Documentation":   "fas fa-file-alt",
	"Productivity":    "fas fa-align-left",
	"Learning":        "fas fa-graduation-cap",
}

const defaultCategoryIcon = "fas fa-lightbulb"

func NewTemplateRepo() *TemplateRepo {
	return &TemplateRepo{templates: defaultTemplates()}
}

// All returns the full catalog.
func (r *TemplateRepo) All() []models.PromptTemplate {
	out := make([]models.PromptTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}

// ByCategory returns templates whose category matches, case-insensitively.
// No match yields an empty slice, not an error.
func (r *TemplateRepo) ByCategory(category string) []models.PromptTemplate {
	out := []models.PromptTemplate{}
	for _, t := range r.templates {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order, each with its
// display icon and template count.
func (r *TemplateRepo) Categories() []models.CategoryInfo {
	counts := make(map[string]int)
	for _, t := range r.templates {
		counts[t.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.CategoryInfo, 0, len(names))
	for _, name := range names {
		icon, ok := categoryIcons[name]
		if !ok {
			icon = defaultCategoryIcon
		}
		out = append(out, models.CategoryInfo{Name: name, Icon: icon, Count: counts[name]})
	}
	return out
}

func defaultTemplates() []models.PromptTemplate {
	return []models.PromptTemplate{
		{
			ID:       "custom-1",
			Category: "Productivity",
			Title:    "Summarize this text",
			Template: "Please summarize the following text in a concise way:",
			Icon:     "fas fa-align-left",
		},
		{
			ID:       "custom-2",
			Category: "Learning",
			Title:    "Explain this concept simply",
			Template: "Explain the following concept in simple terms for a beginner:",
			Icon:     "fas fa-graduation-cap",
		},
		{
			ID:       "default-1",
			Category: "Code Analysis",
			Title:    "Analyze this code for optimization opportunities",
			Template: "Please analyze the following code for optimization opportunities, focusing on performance, memory usage, and algorithmic efficiency. Provide specific suggestions with examples:",
			Icon:     "fas fa-code",
		},
		{
			ID:       "default-2",
			Category: "Code Analysis",
			Title:    "Explain the security implications of this function",
			Template: "Review the following code for security vulnerabilities and explain potential risks. Include recommendations for secure coding practices:",
			Icon:     "fas fa-shield-alt",
		},
		{
			ID:       "default-3",
			Category: "Code Analysis",
			Title:    "Review code for best practices and conventions",
			Template: "Please review this code for adherence to best practices, coding conventions, and maintainability. Suggest improvements for readability and structure:",
			Icon:     "fas fa-check-circle",
		},
		{
			ID:       "default-4",
			Category: "Problem Solving",
			Title:    "Break down this complex problem step by step",
			Template: "Help me break down this complex problem into smaller, manageable steps. Provide a systematic approach to solving:",
			Icon:     "fas fa-puzzle-piece",
		},
		{
			ID:       "default-5",
			Category: "Problem Solving",
			Title:    "What are alternative solutions to this issue?",
			Template: "Analyze this problem and suggest multiple alternative solutions. Compare the pros and cons of each approach:",
			Icon:     "fas fa-lightbulb",
		},
		{
			ID:       "default-6",
			Category: "Documentation",
			Title:    "Generate comprehensive documentation for this code",
			Template: "Create comprehensive documentation for the following code, including function descriptions, parameter explanations, return values, and usage examples:",
			Icon:     "fas fa-file-alt",
		},
		{
			ID:       "default-7",
			Category: "Documentation",
			Title:    "Create API documentation with examples",
			Template: "Generate API documentation for this code including endpoint descriptions, request/response formats, authentication requirements, and practical examples:",
			Icon:     "fas fa-book",
		},
	}
}
