package api

import (
	"log/slog"
	"net/http"

	"github.com/studyhelper/study-api/internal/api/shared"
	"github.com/studyhelper/study-api/internal/service"
)

// StudyHandler handles study artifact generation HTTP requests
type StudyHandler struct {
	studyService *service.StudyService
	logger       *slog.Logger
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(studyService *service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		studyService: studyService,
		logger:       logger,
	}
}

// Generate handles POST /api/generate requests.
// The generation core never rejects input; the only client errors this
// endpoint produces are transport-level ones (malformed JSON, missing
// type, non-positive count).
func (h *StudyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	artifact := h.studyService.Generate(r.Context(), req.Text, req.Type, req.Count)

	shared.RespondWithJSON(w, r, http.StatusOK, artifact)
}
