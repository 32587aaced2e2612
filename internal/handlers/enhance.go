package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"deepchat-backend/internal/models"
	"deepchat-backend/internal/services"
)

type EnhanceHandler struct{}

func NewEnhanceHandler() *EnhanceHandler {
	return &EnhanceHandler{}
}

// EnhancePrompt wraps the submitted prompt without dispatching it anywhere.
func (h *EnhanceHandler) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req models.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Prompt is required", r))
		return
	}

	writeJSON(w, http.StatusOK, models.EnhanceResponse{
		OriginalPrompt: req.Prompt,
		EnhancedPrompt: services.EnhancePrompt(req.Prompt, req.SelectedCategory),
	})
}
