package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// BPECounter counts byte-pair-encoding tokens of an OpenAI tiktoken encoding.
type BPECounter struct {
	enc *tiktoken.Tiktoken
}

// NewBPECounter loads an encoding by name (cl100k_base, o200k_base, ...) or by
// model name (gpt-4o, ...). Encodings are downloaded on first use and cached
// in TIKTOKEN_CACHE_DIR when it is set.
func NewBPECounter(name string) (*BPECounter, error) {
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		var modelErr error

		enc, modelErr = tiktoken.EncodingForModel(name)
		if modelErr != nil {
			return nil, fmt.Errorf("%w: tiktoken encoding %q: %v "+
				"(check the name, allow network access once, or point TIKTOKEN_CACHE_DIR at a populated cache)",
				ErrModelNotFound, name, err)
		}
	}

	return &BPECounter{enc: enc}, nil
}

// Count returns the number of BPE tokens in text, ignoring special tokens.
func (c *BPECounter) Count(text string) int {
	if text == "" {
		return 0
	}

	return len(c.enc.EncodeOrdinary(text))
}
