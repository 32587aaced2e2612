package repository

import (
	"sort"
	"testing"
)

func TestAll_ReturnsFullCatalog(t *testing.T) {
	repo := NewTemplateRepo()

	templates := repo.All()
	if len(templates) == 0 {
		t.Fatal("Expected a non-empty template catalog")
	}

	seen := make(map[string]bool)
	for _, tpl := range templates {
		if tpl.ID == "" || tpl.Category == "" || tpl.Title == "" || tpl.Template == "" || tpl.Icon == "" {
			t.Errorf("Template %q has empty fields", tpl.ID)
		}
		if seen[tpl.ID] {
			t.Errorf("Duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
	}
}

func TestByCategory_CaseInsensitive(t *testing.T) {
	repo := NewTemplateRepo()

	tests := []struct {
		name     string
		category string
		expected int
	}{
		{"exact case", "Code Analysis", 3},
		{"lower case", "code analysis", 3},
		{"upper case", "DOCUMENTATION", 2},
		{"single match", "Learning", 1},
		{"no match", "Astrology", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := repo.ByCategory(tc.category)
			if got == nil {
				t.Fatal("Expected empty slice, not nil, for JSON encoding")
			}
			if len(got) != tc.expected {
				t.Errorf("Expected %d templates, got %d", tc.expected, len(got))
			}
		})
	}
}

func TestCategories_SortedDistinctWithCounts(t *testing.T) {
	repo := NewTemplateRepo()

	categories := repo.Categories()
	if len(categories) == 0 {
		t.Fatal("Expected at least one category")
	}

	names := make([]string, 0, len(categories))
	seen := make(map[string]bool)
	for _, c := range categories {
		if seen[c.Name] {
			t.Errorf("Duplicate category %q", c.Name)
		}
		seen[c.Name] = true
		names = append(names, c.Name)

		if c.Icon == "" {
			t.Errorf("Category %q has no icon", c.Name)
		}
		if got := len(repo.ByCategory(c.Name)); got != c.Count {
			t.Errorf("Category %q count %d does not match template list %d", c.Name, c.Count, got)
		}
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected categories in sorted order, got %v", names)
	}
}

func TestCategories_KnownIcons(t *testing.T) {
	repo := NewTemplateRepo()

	for _, c := range repo.Categories() {
		if c.Name == "Code Analysis" && c.Icon != "fas fa-code" {
			t.Errorf("Expected fas fa-code for Code Analysis, got %q", c.Icon)
		}
		if c.Name == "Problem Solving" && c.Icon != "fas fa-puzzle-piece" {
			t.Errorf("Expected fas fa-puzzle-piece for Problem Solving, got %q", c.Icon)
		}
	}
}
