// Package generation turns raw lesson text into study artifacts (notes,
// summaries, flashcards, multiple-choice questions, and mind maps) using
// deterministic rule-based heuristics. There is no statistical or learned
// model: keyword relevance is frequency-based and sentence segmentation is
// a fixed delimiter rule. Every function is total over string input; empty
// or unusable text maps to fixed fallback values rather than errors.
package generation
