package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/studyhelper/study-api/internal/domain"
	"github.com/studyhelper/study-api/internal/generation"
)

// Fixed dispatcher fallback messages. Both are delivered in the summary
// slot of the envelope regardless of the requested type.
const (
	BlankTextPrompt    = "Please provide lesson text."
	UnknownTypeMessage = "Unknown generation type."
)

// DefaultCount is the item count applied when a request omits count or
// provides a non-positive value.
const DefaultCount = 5

// StudyService orchestrates artifact generation: it normalizes the
// request, routes it to exactly one generator, and wraps the result in
// the response envelope. It never fails; blank text and unrecognized
// types map to fixed fallback envelopes.
type StudyService struct {
	generator *generation.Generator
	logger    *slog.Logger
}

// NewStudyService creates a StudyService backed by the given generator.
// A nil logger falls back to the default slog logger.
func NewStudyService(generator *generation.Generator, logger *slog.Logger) *StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyService{
		generator: generator,
		logger:    logger,
	}
}

// Generate produces the study artifact of the requested type from the
// given lesson text. Text is trimmed first; blank text yields an envelope
// carrying only the fixed prompt in the summary slot. The type is matched
// case-insensitively against the known artifact types; anything else
// yields the fixed unknown-type envelope. A non-positive count defaults
// to DefaultCount.
func (s *StudyService) Generate(ctx context.Context, text, artifactType string, count int) *domain.StudyArtifact {
	text = strings.TrimSpace(text)
	if text == "" {
		return &domain.StudyArtifact{
			Type:    domain.ArtifactType(artifactType),
			Summary: BlankTextPrompt,
		}
	}

	if count <= 0 {
		count = DefaultCount
	}

	parsed, err := domain.ParseArtifactType(strings.ToLower(artifactType))
	if err != nil {
		s.logger.DebugContext(ctx, "unknown generation type requested",
			"requested_type", artifactType)
		return &domain.StudyArtifact{
			Type:    domain.ArtifactType(strings.ToLower(artifactType)),
			Summary: UnknownTypeMessage,
		}
	}

	s.logger.DebugContext(ctx, "generating study artifact",
		"type", parsed,
		"count", count,
		"text_length", len(text))

	artifact := &domain.StudyArtifact{Type: parsed}
	switch parsed {
	case domain.ArtifactNotes:
		artifact.Notes = s.generator.Notes(text, count)
	case domain.ArtifactSummary:
		artifact.Summary = s.generator.Summary(text, count)
	case domain.ArtifactFlashcards:
		artifact.Flashcards = s.generator.Flashcards(text, count)
	case domain.ArtifactMCQs:
		artifact.MCQs = s.generator.MCQs(text, count)
	case domain.ArtifactQuiz:
		artifact.Quiz = s.generator.MCQs(text, count)
	case domain.ArtifactMindMap:
		artifact.MindMap = s.generator.MindMap(text)
	}
	return artifact
}
