package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey        string
	GeminiModel         string
	QuizMaxOutputTokens int

	// YouTube Data API
	YouTubeAPIKey            string
	YouTubeRegion            string
	YouTubeRelevanceLanguage string

	// Curation defaults
	MaxKeywords     int
	MaxVideoResults int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		GeminiAPIKey:        mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		QuizMaxOutputTokens: getEnvAsIntOrDefault("QUIZ_MAX_OUTPUT_TOKENS", 8192),

		YouTubeAPIKey:            mustGetEnv("YOUTUBE_API_KEY"),
		YouTubeRegion:            getEnvOrDefault("YOUTUBE_REGION", "BR"),
		YouTubeRelevanceLanguage: getEnvOrDefault("YOUTUBE_RELEVANCE_LANGUAGE", "pt"),

		MaxKeywords:     getEnvAsIntOrDefault("MAX_KEYWORDS", 5),
		MaxVideoResults: getEnvAsIntOrDefault("MAX_VIDEO_RESULTS", 3),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
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
