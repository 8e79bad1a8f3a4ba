package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhelper/study-api/internal/api/shared"
	"github.com/studyhelper/study-api/internal/domain"
	"github.com/studyhelper/study-api/internal/generation"
	"github.com/studyhelper/study-api/internal/service"
)

func newTestStudyHandler() *StudyHandler {
	svc := service.NewStudyService(generation.NewWithSource(rand.NewSource(1)), nil)
	return NewStudyHandler(svc, nil)
}

func postGenerate(t *testing.T, handler *StudyHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.Generate(rr, req)
	return rr
}

func TestGenerateEndpoint(t *testing.T) {
	t.Parallel()

	handler := newTestStudyHandler()

	body, err := json.Marshal(GenerateRequest{
		Text:  "Cats are mammals. Cats hunt mice. Mice are small.",
		Type:  "notes",
		Count: 2,
	})
	require.NoError(t, err)

	rr := postGenerate(t, handler, body)
	require.Equal(t, http.StatusOK, rr.Code)

	var artifact domain.StudyArtifact
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &artifact))

	assert.Equal(t, domain.ArtifactNotes, artifact.Type)
	assert.Equal(t, []string{"• Cats are mammals", "• Cats hunt mice"}, artifact.Notes)
	assert.Empty(t, artifact.Summary)
}

// The envelope must carry exactly one populated artifact slot; the rest
// stay absent from the serialized JSON.
func TestGenerateEndpointPopulatesSingleSlot(t *testing.T) {
	t.Parallel()

	handler := newTestStudyHandler()
	slots := map[string]string{
		"notes":      "notes",
		"summary":    "summary",
		"flashcards": "flashcards",
		"mcqs":       "mcqs",
		"quiz":       "quiz",
		"mindmap":    "mindmap",
	}

	for typ, slot := range slots {
		body, err := json.Marshal(GenerateRequest{
			Text: "Cats are mammals. Cats hunt mice. Mice are small.",
			Type: typ,
		})
		require.NoError(t, err)

		rr := postGenerate(t, handler, body)
		require.Equal(t, http.StatusOK, rr.Code, "type %s", typ)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))

		assert.Contains(t, raw, "type")
		assert.Contains(t, raw, slot, "type %s should populate %s", typ, slot)
		for other := range slots {
			if other != slot {
				assert.NotContains(t, raw, other, "type %s must not populate %s", typ, other)
			}
		}
	}
}

func TestGenerateEndpointBlankText(t *testing.T) {
	t.Parallel()

	handler := newTestStudyHandler()
	rr := postGenerate(t, handler, []byte(`{"text": "   ", "type": "mindmap"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var artifact domain.StudyArtifact
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &artifact))
	assert.Equal(t, "Please provide lesson text.", artifact.Summary)
	assert.Nil(t, artifact.MindMap)
}

func TestGenerateEndpointUnknownType(t *testing.T) {
	t.Parallel()

	handler := newTestStudyHandler()
	rr := postGenerate(t, handler, []byte(`{"text": "Some lesson text.", "type": "unknown_type"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var artifact domain.StudyArtifact
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &artifact))
	assert.Equal(t, "Unknown generation type.", artifact.Summary)
}

// The handler validates through the shared helper, so the request DTO's
// struct tags must be enforceable there.
func TestGenerateRequestValidation(t *testing.T) {
	t.Parallel()

	assert.NoError(t, shared.ValidateRequest(GenerateRequest{Text: "abc", Type: "notes"}))
	assert.NoError(t, shared.ValidateRequest(GenerateRequest{Text: "abc", Type: "notes", Count: 3}))

	assert.Error(t, shared.ValidateRequest(GenerateRequest{Text: "abc"}), "missing type")
	assert.Error(t, shared.ValidateRequest(GenerateRequest{Text: "abc", Type: "notes", Count: -1}), "negative count")
}

func TestGenerateEndpointBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"text": "abc", `},
		{name: "missing type", body: `{"text": "abc"}`},
		{name: "negative count", body: `{"text": "abc", "type": "notes", "count": -1}`},
		{name: "wrong field type", body: `{"text": 42, "type": "notes"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := newTestStudyHandler()
			rr := postGenerate(t, handler, []byte(tc.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var errResp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
