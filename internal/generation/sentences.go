package generation

import "strings"

// SplitSentences segments lesson text into trimmed, non-empty sentences.
// Newlines are treated as spaces and the period is the only sentence
// delimiter; original order is preserved. Text without periods comes back
// as a single sentence when non-empty.
func SplitSentences(text string) []string {
	flattened := strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	for _, piece := range strings.Split(flattened, ".") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			sentences = append(sentences, piece)
		}
	}

	return sentences
}
