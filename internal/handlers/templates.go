package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"deepchat-backend/internal/repository"
)

type TemplateHandler struct {
	templateRepo *repository.TemplateRepo
}

func NewTemplateHandler(templateRepo *repository.TemplateRepo) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.templateRepo.All())
}

// ListByCategory filters case-insensitively; an unknown category yields an
// empty list, not an error.
func (h *TemplateHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	writeJSON(w, http.StatusOK, h.templateRepo.ByCategory(category))
}

func (h *TemplateHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.templateRepo.Categories())
}
