package domain

import "errors"

// Artifact-specific validation errors
var (
	// ErrMCQOptionCount is returned when an MCQ does not have exactly four options.
	ErrMCQOptionCount = errors.New("mcq must have exactly 4 options")

	// ErrMCQOptionsNotDistinct is returned when two MCQ options are identical.
	ErrMCQOptionsNotDistinct = errors.New("mcq options must be distinct")

	// ErrMCQAnswerIndexRange is returned when answer_index does not point into options.
	ErrMCQAnswerIndexRange = errors.New("mcq answer index out of range")

	// ErrMindMapNoRoot is returned when a mind map lacks the root node.
	ErrMindMapNoRoot = errors.New("mind map must contain a root node")

	// ErrMindMapEdgeOrigin is returned when an edge does not originate at the root.
	ErrMindMapEdgeOrigin = errors.New("mind map edge must originate at root")

	// ErrMindMapDanglingEdge is returned when an edge targets a node that does not exist.
	ErrMindMapDanglingEdge = errors.New("mind map edge targets unknown node")

	// ErrArtifactTypeUnknown is returned when a string is not a recognized artifact type.
	ErrArtifactTypeUnknown = errors.New("unknown artifact type")
)

// ArtifactType identifies which study artifact a request asks for.
type ArtifactType string

// Recognized artifact types. Quiz shares the MCQ generator but fills a
// separate response slot.
const (
	ArtifactNotes      ArtifactType = "notes"
	ArtifactSummary    ArtifactType = "summary"
	ArtifactFlashcards ArtifactType = "flashcards"
	ArtifactMCQs       ArtifactType = "mcqs"
	ArtifactQuiz       ArtifactType = "quiz"
	ArtifactMindMap    ArtifactType = "mindmap"
)

// ParseArtifactType matches a string against the recognized artifact types.
// Matching is exact; callers are expected to lower-case first.
func ParseArtifactType(s string) (ArtifactType, error) {
	switch t := ArtifactType(s); t {
	case ArtifactNotes, ArtifactSummary, ArtifactFlashcards, ArtifactMCQs, ArtifactQuiz, ArtifactMindMap:
		return t, nil
	default:
		return "", ErrArtifactTypeUnknown
	}
}

// Flashcard is a question/answer pair generated from lesson text.
// Flashcards are request-scoped values with no identity beyond their
// position in the generated sequence.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MCQ is a multiple-choice question with exactly four options, one of
// which (Options[AnswerIndex]) is the keyword the question targets.
type MCQ struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// Validate checks the MCQ structural invariants: exactly four distinct
// options and an answer index pointing into them.
func (m *MCQ) Validate() error {
	if len(m.Options) != 4 {
		return ErrMCQOptionCount
	}

	seen := make(map[string]struct{}, len(m.Options))
	for _, opt := range m.Options {
		if _, dup := seen[opt]; dup {
			return ErrMCQOptionsNotDistinct
		}
		seen[opt] = struct{}{}
	}

	if m.AnswerIndex < 0 || m.AnswerIndex >= len(m.Options) {
		return ErrMCQAnswerIndexRange
	}

	return nil
}

// MindMapRootID is the id of the single root node of every mind map.
const MindMapRootID = "root"

// MindMapNode is a labeled node in a mind map.
type MindMapNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MindMapEdge connects two nodes by id. In the current design every edge
// originates at the root, so the structure is a star graph.
type MindMapEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MindMap is a flat one-level tree rooted at the node with id "root".
type MindMap struct {
	Nodes []MindMapNode `json:"nodes"`
	Edges []MindMapEdge `json:"edges"`
}

// Validate checks the mind map structural invariants: exactly one root
// node exists, every edge originates at the root, and every edge target
// is a known node id.
func (m *MindMap) Validate() error {
	ids := make(map[string]struct{}, len(m.Nodes))
	for _, n := range m.Nodes {
		ids[n.ID] = struct{}{}
	}

	if _, ok := ids[MindMapRootID]; !ok {
		return ErrMindMapNoRoot
	}

	for _, e := range m.Edges {
		if e.From != MindMapRootID {
			return ErrMindMapEdgeOrigin
		}
		if _, ok := ids[e.To]; !ok {
			return ErrMindMapDanglingEdge
		}
	}

	return nil
}

// StudyArtifact is the uniform response envelope. Exactly one of the
// artifact fields is populated, matching Type; the rest stay absent in
// the serialized form.
type StudyArtifact struct {
	Type       ArtifactType `json:"type"`
	Notes      []string     `json:"notes,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Flashcards []Flashcard  `json:"flashcards,omitempty"`
	MCQs       []MCQ        `json:"mcqs,omitempty"`
	Quiz       []MCQ        `json:"quiz,omitempty"`
	MindMap    *MindMap     `json:"mindmap,omitempty"`
}
