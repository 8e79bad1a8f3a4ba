package generation

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/studyhelper/study-api/internal/domain"
)

// Default item counts per artifact, applied when the caller passes n <= 0.
const (
	DefaultNotesCount     = 7
	DefaultSummaryCount   = 3
	DefaultFlashcardCount = 5
	DefaultMCQCount       = 5

	// MindMapKeywordCount caps the number of branch nodes in a mind map.
	MindMapKeywordCount = 6
)

// Fixed fallback strings used when the text yields no sentences or keywords.
const (
	NoNotesPlaceholder   = "No content recognized."
	NoSummaryPlaceholder = "No content provided."
	MainIdeaQuestion     = "What is the main idea?"
	MindMapRootLabel     = "Study Notes"
)

// fallbackMCQOptions is the option set of the literal fallback MCQ emitted
// when the text has no extractable keywords. The answer is always the
// first option.
var fallbackMCQOptions = []string{"Summary", "Detail", "Example", "Opinion"}

// titleCaser capitalizes the first letter of each word for mind map labels.
var titleCaser = cases.Title(language.English)

// Generator produces study artifacts from raw lesson text using rule-based
// heuristics. All methods are pure apart from the option shuffle in MCQs,
// whose randomness source is injectable for deterministic tests. A
// Generator is safe for concurrent use; the rand source is guarded by a
// mutex since math/rand sources are not goroutine-safe.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator backed by a time-seeded randomness source.
// Production callers do not need reproducible shuffles.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a Generator with an explicit randomness source,
// allowing tests to pin the shuffle order.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Notes formats the first n sentences of the text as bullet items. When
// the text has no sentences it returns a single placeholder entry, so the
// result is never empty.
func (g *Generator) Notes(text string, n int) []string {
	if n <= 0 {
		n = DefaultNotesCount
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return []string{NoNotesPlaceholder}
	}
	if len(sentences) > n {
		sentences = sentences[:n]
	}

	notes := make([]string, len(sentences))
	for i, s := range sentences {
		notes[i] = "• " + s
	}
	return notes
}

// Summary joins the first n sentences of the text with single spaces.
// Text with no sentences yields a fixed placeholder.
func (g *Generator) Summary(text string, n int) string {
	if n <= 0 {
		n = DefaultSummaryCount
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return NoSummaryPlaceholder
	}
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, " ")
}

// Flashcards pairs each top keyword with the first sentence mentioning it,
// or a synthesized answer when no sentence does. Text without keywords
// falls back to a single card whose answer is the default summary, so the
// result is never empty.
func (g *Generator) Flashcards(text string, n int) []domain.Flashcard {
	if n <= 0 {
		n = DefaultFlashcardCount
	}

	keywords := TopKeywords(text, max(3, n))
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	sentences := SplitSentences(text)

	cards := make([]domain.Flashcard, 0, len(keywords))
	for _, k := range keywords {
		answer := firstSentenceContaining(sentences, k)
		if answer == "" {
			answer = fmt.Sprintf("Definition/context for %s from the text.", k)
		}
		cards = append(cards, domain.Flashcard{
			Question: fmt.Sprintf("What is %s?", k),
			Answer:   answer,
		})
	}

	if len(cards) == 0 {
		cards = append(cards, domain.Flashcard{
			Question: MainIdeaQuestion,
			Answer:   g.Summary(text, 0),
		})
	}
	return cards
}

// MCQs builds one multiple-choice question per top keyword: the keyword is
// the correct option and three distractors are drawn from the remaining
// keywords, padded with synthesized entries when too few exist. Options
// are uniformly shuffled. Text without keywords falls back to a single
// fixed question, so the result is never empty.
func (g *Generator) MCQs(text string, n int) []domain.MCQ {
	if n <= 0 {
		n = DefaultMCQCount
	}

	keywords := TopKeywords(text, n+3)
	sentences := SplitSentences(text)

	limit := len(keywords)
	if limit > n {
		limit = n
	}

	out := make([]domain.MCQ, 0, limit)
	for _, k := range keywords[:limit] {
		question := firstSentenceContaining(sentences, k)
		if question == "" {
			question = fmt.Sprintf("Identify the concept related to '%s'.", k)
		}

		options := append(distractorsFor(keywords, k), k)
		g.shuffle(options)

		answerIndex := 0
		for i, opt := range options {
			if opt == k {
				answerIndex = i
				break
			}
		}

		out = append(out, domain.MCQ{
			Question:    question,
			Options:     options,
			AnswerIndex: answerIndex,
		})
	}

	if len(out) == 0 {
		out = append(out, domain.MCQ{
			Question:    MainIdeaQuestion,
			Options:     append([]string(nil), fallbackMCQOptions...),
			AnswerIndex: 0,
		})
	}
	return out
}

// MindMap builds a star graph: a fixed root node plus one title-cased
// branch node per extracted keyword. Text without keywords yields the
// root alone with no edges.
func (g *Generator) MindMap(text string) *domain.MindMap {
	keywords := TopKeywords(text, MindMapKeywordCount)

	m := &domain.MindMap{
		Nodes: []domain.MindMapNode{{ID: domain.MindMapRootID, Label: MindMapRootLabel}},
	}
	for i, k := range keywords {
		id := fmt.Sprintf("n%d", i)
		m.Nodes = append(m.Nodes, domain.MindMapNode{ID: id, Label: titleCaser.String(k)})
		m.Edges = append(m.Edges, domain.MindMapEdge{From: domain.MindMapRootID, To: id})
	}
	return m
}

// shuffle permutes options in place using the generator's rand source.
func (g *Generator) shuffle(options []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}

// firstSentenceContaining returns the first sentence whose lower-cased
// form contains the keyword, or "" when none does.
func firstSentenceContaining(sentences []string, keyword string) string {
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), keyword) {
			return s
		}
	}
	return ""
}

// distractorsFor picks up to three keywords other than k, in extraction
// order, padding with synthesized entries so exactly three distinct
// distractors come back.
func distractorsFor(keywords []string, k string) []string {
	distractors := make([]string, 0, 3)
	for _, d := range keywords {
		if d != k {
			distractors = append(distractors, d)
			if len(distractors) == 3 {
				return distractors
			}
		}
	}

	// Keep padded entries distinct so the four-distinct-options invariant
	// holds even for single-keyword texts.
	for i := len(distractors); i < 3; i++ {
		pad := fmt.Sprintf("Not %s", k)
		if i > 0 {
			pad = fmt.Sprintf("Not %s (%d)", k, i+1)
		}
		distractors = append(distractors, pad)
	}
	return distractors
}
