// Package main implements the entry point for the study helper API server
// which turns raw lesson text into study artifacts (notes, summaries,
// flashcards, quizzes, and mind maps) using rule-based generation.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/studyhelper/study-api/internal/config"
	"github.com/studyhelper/study-api/internal/platform/logger"
)

// main initializes configuration, logging, the optional database probe
// pool, and the HTTP server, then serves until interrupted.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.Server)

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	return newApplication(cfg, appLogger), nil
}
