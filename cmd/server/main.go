package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"content-curator/internal/config"
	"content-curator/internal/handlers"
	"content-curator/internal/router"
	"content-curator/internal/services"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("🚀 Starting Content Curator...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logrus.Info("✓ Environment variables loaded")

	ctx := context.Background()

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logrus.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	logrus.Info("✓ Gemini client initialized")

	// ──── Step 3: Initialize YouTube Data API Client ────
	youtubeService, err := services.NewYouTubeService(ctx, cfg.YouTubeAPIKey, cfg.YouTubeRegion, cfg.YouTubeRelevanceLanguage)
	if err != nil {
		logrus.Fatalf("✗ YouTube client initialization failed: %v", err)
	}
	logrus.Info("✓ YouTube Data API client initialized")

	// ──── Initialize Services ────
	keywordService := services.NewKeywordService(geminiService, cfg.MaxKeywords)
	quizService := services.NewQuizService(geminiService, int32(cfg.QuizMaxOutputTokens), services.LogSink{})
	fileExtractService := services.NewFileExtractService()

	// ──── Initialize Handlers ────
	youtubeLinksHandler := handlers.NewYouTubeLinksHandler(keywordService)
	quizHandler := handlers.NewQuizHandler(fileExtractService, quizService)
	curateHandler := handlers.NewCurateHandler(keywordService, youtubeService, int64(cfg.MaxVideoResults))

	// ──── Step 4: Start HTTP Server ────
	r := router.New(youtubeLinksHandler, quizHandler, curateHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Quiz generation waits on a large completion; keep this generous.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logrus.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logrus.Infof("✓ Content Curator ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logrus.Fatalf("Server error: %v", err)
	}
}
