package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"deepchat-backend/internal/models"
	"deepchat-backend/internal/services"
)

// UserIDPrefix tags the sentinel line emitted ahead of the content chunks so
// the client can tell it apart from response text.
const UserIDPrefix = "USER_ID:"

type ChatHandler struct {
	dispatcher *services.Dispatcher
	streamer   *services.Streamer
}

func NewChatHandler(dispatcher *services.Dispatcher, streamer *services.Streamer) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
		streamer:   streamer,
	}
}

// SendMessage accepts a chat request, optionally enhances the prompt,
// dispatches it to the selected provider, and streams the reply back as a
// plain-text body in fixed-size chunks.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Content is required", r))
		return
	}

	prompt := req.Content
	if req.IsEnhanced {
		prompt = services.EnhancePrompt(req.Content, req.SelectedCategory)
	}

	userID := req.UserID
	if userID == "" {
		userID = uuid.New().String()
	}

	result := h.dispatcher.Dispatch(r.Context(), prompt, req.Model, userID, req.History)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)

	// Sentinel line first, so the client learns its resolved id before any
	// content arrives.
	fmt.Fprintf(w, "%s%s\n", UserIDPrefix, userID)
	if canFlush {
		flusher.Flush()
	}

	for chunk := range h.streamer.Stream(r.Context(), result.Text) {
		if _, err := fmt.Fprint(w, chunk); err != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}
}
