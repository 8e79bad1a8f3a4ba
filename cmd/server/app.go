package main

import (
	"database/sql"
	"log/slog"

	"github.com/studyhelper/study-api/internal/config"
	"github.com/studyhelper/study-api/internal/generation"
	"github.com/studyhelper/study-api/internal/service"
)

// application holds the shared dependencies of the server: configuration,
// the logger, the optional database probe pool, and the study service.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	studyService *service.StudyService
}

// newApplication wires the application dependencies together. The database
// pool is nil when no database URL is configured; the generator core is
// stateless and needs no external services.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           setupDatabase(cfg, logger),
		studyService: service.NewStudyService(generation.New(), logger),
	}
}

// cleanup releases resources held by the application. Called during
// graceful shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database pool", "error", err)
		}
	}
}
