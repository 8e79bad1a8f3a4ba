package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/studyhelper/study-api/internal/api/shared"
)

// probeTimeout bounds the database ping and table listing of the probe.
const probeTimeout = 5 * time.Second

// SystemHandler handles the greeting and database probe endpoints.
// The db pool is nil when no database URL is configured; the probe then
// reports the database as not configured instead of failing.
type SystemHandler struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSystemHandler creates a new SystemHandler. db may be nil.
func NewSystemHandler(db *sql.DB, logger *slog.Logger) *SystemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{
		db:     db,
		logger: logger,
	}
}

// Root handles GET / requests.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Hello from the study helper backend!",
	})
}

// Hello handles GET /api/hello requests.
func (h *SystemHandler) Hello(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Hello from the backend API!",
	})
}

// DatabaseCheck handles GET /test requests. It reports whether the
// optional database is configured, reachable, and what it contains.
// Degraded states are reported in the body; the endpoint itself always
// responds 200.
func (h *SystemHandler) DatabaseCheck(w http.ResponseWriter, r *http.Request) {
	resp := DatabaseCheckResponse{
		Backend:          "running",
		Database:         "not configured",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}

	if h.db == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, resp)
		return
	}
	resp.DatabaseURL = "set"

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("database probe ping failed", "error", err)
		resp.Database = "configured but unreachable"
		shared.RespondWithJSON(w, r, http.StatusOK, resp)
		return
	}
	resp.Database = "available"
	resp.ConnectionStatus = "connected"

	if err := h.db.QueryRowContext(ctx, "SELECT current_database()").Scan(&resp.DatabaseName); err != nil {
		h.logger.Warn("database probe name lookup failed", "error", err)
	}

	tables, err := h.listTables(ctx)
	if err != nil {
		h.logger.Warn("database probe table listing failed", "error", err)
		resp.Database = "connected but degraded"
	} else {
		resp.Database = "connected and working"
		resp.Tables = tables
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// listTables returns up to ten public table names, mirroring the probe's
// original collection listing.
func (h *SystemHandler) listTables(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' ORDER BY table_name LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			h.logger.Warn("failed to close probe rows", "error", err)
		}
	}()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
