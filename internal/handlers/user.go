package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"deepchat-backend/internal/models"
)

// UserHandler fabricates a fresh user record per call. Placeholder for an
// external user store.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	writeJSON(w, http.StatusOK, models.User{
		ID:              uuid.New().String(),
		Username:        fmt.Sprintf("guest-%d", now.Unix()),
		Email:           "guest@example.com",
		ModelPreference: "phi4",
		CreatedAt:       now,
	})
}
