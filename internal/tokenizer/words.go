package tokenizer

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// WordCounter counts Unicode word-boundary segments (UAX #29). Words, numbers
// and punctuation marks are tokens; runs of whitespace are not.
type WordCounter struct{}

// NewWordCounter returns a UAX #29 word counter.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Count returns the number of non-whitespace word segments in text.
func (*WordCounter) Count(text string) int {
	n := 0

	segments := words.FromString(text)
	for segments.Next() {
		if strings.TrimSpace(segments.Value()) == "" {
			continue
		}

		n++
	}

	return n
}

// Tokens returns the segments Count would count.
func (*WordCounter) Tokens(text string) []string {
	var tokens []string

	segments := words.FromString(text)
	for segments.Next() {
		if seg := segments.Value(); strings.TrimSpace(seg) != "" {
			tokens = append(tokens, seg)
		}
	}

	return tokens
}
