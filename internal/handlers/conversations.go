package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"deepchat-backend/internal/models"
)

// ConversationHandler serves placeholder conversation records. Nothing is
// persisted between calls; a real datastore is expected to replace this
// handler wholesale.
type ConversationHandler struct{}

func NewConversationHandler() *ConversationHandler {
	return &ConversationHandler{}
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	writeJSON(w, http.StatusOK, []models.Conversation{
		{
			ID:           uuid.New().String(),
			Title:        "Getting started with the assistant",
			Model:        "deepseek",
			MessageCount: 4,
			CreatedAt:    now.Add(-48 * time.Hour),
			UpdatedAt:    now.Add(-47 * time.Hour),
		},
		{
			ID:           uuid.New().String(),
			Title:        "Debugging a Go service",
			Model:        "phi4",
			MessageCount: 7,
			CreatedAt:    now.Add(-24 * time.Hour),
			UpdatedAt:    now.Add(-2 * time.Hour),
		},
	})
}

func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "deleted",
	})
}

func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")
	now := time.Now()
	writeJSON(w, http.StatusOK, []models.ConversationMessage{
		{
			ID:             uuid.New().String(),
			ConversationID: conversationID,
			Sender:         "user",
			Content:        "Hello! Can you explain how chunked streaming works?",
			CreatedAt:      now.Add(-10 * time.Minute),
		},
		{
			ID:             uuid.New().String(),
			ConversationID: conversationID,
			Sender:         "ai",
			Content:        "The response text is split into fixed-size pieces and written to the connection one at a time.",
			CreatedAt:      now.Add(-9 * time.Minute),
		},
	})
}
