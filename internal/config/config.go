package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream providers
	DeepSeekAPIKey    string
	DeepSeekURL       string
	OpenRouterAPIKey  string
	OpenRouterURL     string
	DefaultModel      string
	UpstreamTimeoutMs int

	// Streaming
	ChunkSize     int
	StreamDelayMs int

	// Uploads
	MaxUploadBytes int64

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		// Provider keys are optional: with no key configured the dispatcher
		// answers from the offline fallback generator instead of failing.
		DeepSeekAPIKey:    getEnvOrDefault("DEEPSEEK_API_KEY", ""),
		DeepSeekURL:       getEnvOrDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/chat/completions"),
		OpenRouterAPIKey:  getEnvOrDefault("OPENROUTER_API_KEY", ""),
		OpenRouterURL:     getEnvOrDefault("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		DefaultModel:      getEnvOrDefault("DEFAULT_MODEL", "deepseek"),
		UpstreamTimeoutMs: getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_MS", 30000),

		ChunkSize:     getEnvAsIntOrDefault("CHUNK_SIZE", 30),
		StreamDelayMs: getEnvAsIntOrDefault("STREAM_DELAY_MS", 50),

		MaxUploadBytes: int64(getEnvAsIntOrDefault("MAX_UPLOAD_BYTES", 10*1024*1024)),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
