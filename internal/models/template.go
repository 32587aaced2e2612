package models

// PromptTemplate is a static catalog entry, loaded once at startup.
type PromptTemplate struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Template string `json:"template"`
	Icon     string `json:"icon"`
}

// CategoryInfo describes one distinct template category.
type CategoryInfo struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
