package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deepchat-backend/internal/config"
	"deepchat-backend/internal/handlers"
	"deepchat-backend/internal/repository"
	"deepchat-backend/internal/router"
	"deepchat-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting DeepChat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.DeepSeekAPIKey == "" && cfg.OpenRouterAPIKey == "" {
		log.Println("⚠ No provider API keys configured, responses will use offline fallback")
	}

	// ──── Step 2: Initialize Services ────
	dispatcher := services.NewDispatcher(cfg)
	streamer := services.NewStreamer(cfg.ChunkSize, time.Duration(cfg.StreamDelayMs)*time.Millisecond)
	fileExtract := services.NewFileExtractService()
	templateRepo := repository.NewTemplateRepo()
	log.Printf("✓ Dispatcher ready (default provider: %s)", cfg.DefaultModel)

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(dispatcher, streamer)
	enhanceHandler := handlers.NewEnhanceHandler()
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	uploadHandler := handlers.NewUploadHandler(fileExtract, cfg.MaxUploadBytes)
	conversationHandler := handlers.NewConversationHandler()
	userHandler := handlers.NewUserHandler()

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		chatHandler,
		enhanceHandler,
		templateHandler,
		uploadHandler,
		conversationHandler,
		userHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Write timeout must cover a full paced stream, not a single write.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ DeepChat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
