package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver
	"github.com/studyhelper/study-api/internal/config"
)

// setupDatabase opens the optional connection pool backing the database
// availability probe. The generator core stores nothing, so a missing or
// unreachable database never prevents startup; the probe endpoint reports
// connectivity per request instead.
func setupDatabase(cfg *config.Config, logger *slog.Logger) *sql.DB {
	if cfg.Database.URL == "" {
		logger.Info("No database configured, probe endpoint will report not configured")
		return nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		logger.Warn("Failed to open database pool, probe endpoint degraded", "error", err)
		return nil
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Probe the connection once at startup for an early diagnostic.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Warn("Database configured but unreachable at startup", "error", err)
		return db
	}

	logger.Info("Database connection established")
	return db
}
