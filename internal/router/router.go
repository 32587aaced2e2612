package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"deepchat-backend/internal/handlers"
	"deepchat-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	enhanceHandler *handlers.EnhanceHandler,
	templateHandler *handlers.TemplateHandler,
	uploadHandler *handlers.UploadHandler,
	conversationHandler *handlers.ConversationHandler,
	userHandler *handlers.UserHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Message rate limiter (60 req/min per IP)
	messageLimiter := middleware.NewRateLimiter(60, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Chat ────
		r.Group(func(r chi.Router) {
			r.Use(messageLimiter.Middleware)
			r.Post("/message", chatHandler.SendMessage)
		})
		r.Post("/enhance-prompt", enhanceHandler.EnhancePrompt)

		// ──── Prompt Templates ────
		r.Get("/prompt-templates", templateHandler.List)
		r.Get("/prompt-templates/{category}", templateHandler.ListByCategory)
		r.Get("/categories", templateHandler.Categories)

		// ──── Documents ────
		r.Post("/upload-document", uploadHandler.UploadDocument)

		// ──── Conversations (mock) ────
		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)
			r.Delete("/{id}", conversationHandler.Delete)
			r.Get("/{id}/messages", conversationHandler.Messages)
		})

		// ──── User (mock) ────
		r.Get("/user", userHandler.GetUser)
	})

	return r
}
