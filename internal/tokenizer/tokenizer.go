// Package tokenizer loads a tokenizer model and runs batches of texts through it.
//
// A Pipeline is an explicitly constructed resource: Load resolves the model
// once and the caller passes the Pipeline to whatever needs it. Pipe returns
// exactly one Doc per input text, in input order.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBatchSize is used when Pipe is called with a non-positive batch size.
const DefaultBatchSize = 500

// Model identifiers.
const (
	ModelWords    = "uax29"
	ModelEstimate = "estimate"

	tiktokenPrefix = "tiktoken/"
)

// ErrModelNotFound is returned when a tokenizer or sentence model cannot be loaded.
var ErrModelNotFound = errors.New("tokenizer model not found")

// Counter counts the tokens of a single text.
type Counter interface {
	Count(text string) int
}

// Doc is the result for one input text.
type Doc struct {
	Tokens    int
	Sentences int
}

// Len returns the length of the token sequence.
func (d Doc) Len() int {
	return d.Tokens
}

// Options select the models a Pipeline loads.
type Options struct {
	// Model is one of "uax29" (alias "words"), "estimate" or
	// "tiktoken/<encoding or model name>".
	Model string
	// SentenceModel is an optional path to Punkt training data.
	SentenceModel string
}

// Pipeline runs texts through a loaded tokenizer model.
type Pipeline struct {
	model     string
	counter   Counter
	sentences *SentenceSplitter
}

// Load resolves the configured models.
func Load(opts Options) (*Pipeline, error) {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = ModelWords
	}

	var (
		counter Counter
		err     error
	)

	switch {
	case model == ModelWords || model == "words":
		model = ModelWords
		counter = NewWordCounter()
	case model == ModelEstimate:
		counter = NewEstimatingCounter()
	case strings.HasPrefix(model, tiktokenPrefix):
		counter, err = NewBPECounter(strings.TrimPrefix(model, tiktokenPrefix))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q; use %q, %q or %q",
			ErrModelNotFound, model, ModelWords, ModelEstimate, tiktokenPrefix+"cl100k_base")
	}

	p := &Pipeline{model: model, counter: counter}

	if opts.SentenceModel != "" {
		p.sentences, err = LoadSentenceSplitter(opts.SentenceModel)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// New wraps an existing counter in a Pipeline.
func New(model string, counter Counter) *Pipeline {
	return &Pipeline{model: model, counter: counter}
}

// Model returns the canonical identifier of the loaded model.
func (p *Pipeline) Model() string {
	return p.model
}

// Pipe tokenizes texts in consecutive batches of batchSize. onBatch, if not
// nil, is called after every batch with the number of texts processed so far.
func (p *Pipeline) Pipe(texts []string, batchSize int, onBatch func(done int)) ([]Doc, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	docs := make([]Doc, 0, len(texts))

	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))

		for _, text := range texts[start:end] {
			docs = append(docs, p.doc(text))
		}

		if onBatch != nil {
			onBatch(end)
		}
	}

	return docs, nil
}

func (p *Pipeline) doc(text string) Doc {
	d := Doc{Tokens: p.counter.Count(text)}
	if p.sentences != nil {
		d.Sentences = p.sentences.Count(text)
	}

	return d
}
