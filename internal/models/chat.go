package models

// ChatMessage is a single message in a conversation history.
type ChatMessage struct {
	Sender  string `json:"sender"` // "user" or "ai"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the message endpoint.
// Field names match what the web client sends.
type ChatRequest struct {
	Content          string        `json:"content"`
	IsEnhanced       bool          `json:"is_enhanced"`
	History          []ChatMessage `json:"history"`
	Model            string        `json:"model"`
	UserID           string        `json:"user_id"`
	SelectedCategory string        `json:"selected_category"`
}

// EnhanceRequest is the payload for the synchronous enhancement endpoint.
type EnhanceRequest struct {
	Prompt           string `json:"prompt"`
	SelectedCategory string `json:"selected_category"`
}

// EnhanceResponse mirrors the response shape the client expects.
type EnhanceResponse struct {
	OriginalPrompt string `json:"originalPrompt"`
	EnhancedPrompt string `json:"enhancedPrompt"`
}
