package tokenizer

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurosnap/sentences"
)

// SentenceSplitter counts sentences with a trained Punkt model.
type SentenceSplitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

// LoadSentenceSplitter reads Punkt training data (JSON) from path.
func LoadSentenceSplitter(path string) (*SentenceSplitter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence model %s: %v "+
			"(download Punkt training data for the corpus language and pass its path)",
			ErrModelNotFound, path, err)
	}

	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence model %s is not valid Punkt training data: %v",
			ErrModelNotFound, path, err)
	}

	return &SentenceSplitter{tok: sentences.NewSentenceTokenizer(storage)}, nil
}

// Count returns the number of non-empty sentences in text.
func (s *SentenceSplitter) Count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	n := 0

	for _, sent := range s.tok.Tokenize(text) {
		if strings.TrimSpace(sent.Text) != "" {
			n++
		}
	}

	return n
}
