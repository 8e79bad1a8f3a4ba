package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/studyhelper/study-api/internal/api"
	apiMiddleware "github.com/studyhelper/study-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware, wrapped in the CORS handler for the browser
// front end. Returns the configured handler.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	systemHandler := api.NewSystemHandler(app.db, app.logger)
	studyHandler := api.NewStudyHandler(app.studyService, app.logger)

	// Register routes
	r.Get("/", systemHandler.Root)
	r.Get("/test", systemHandler.DatabaseCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", systemHandler.Hello)
		r.Post("/generate", studyHandler.Generate)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Configure CORS with the allowed origins from config
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return corsHandler.Handler(r)
}
