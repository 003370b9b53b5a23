// Package pipeline drives the token count run: discover archives, read,
// normalize and tokenize each one in turn, and aggregate the counts.
package pipeline

import (
	"fmt"
	"time"

	"corpustok/internal/archive"
	"corpustok/internal/config"
	"corpustok/internal/logger"
	"corpustok/internal/models"
	"corpustok/internal/normalizer"
	"corpustok/internal/progress"
	"corpustok/internal/report"
	"corpustok/internal/tokenizer"
)

// Tokenizer is the capability the runner needs from a loaded model.
// Pipe must return one Doc per text, in input order.
type Tokenizer interface {
	Model() string
	Pipe(texts []string, batchSize int, onBatch func(done int)) ([]tokenizer.Doc, error)
}

// ProgressFunc creates a progress bar for one archive.
type ProgressFunc func(label string, total int) *progress.Bar

// Runner processes archives strictly one after another.
type Runner struct {
	cfg       *config.Config
	tok       Tokenizer
	log       *logger.Logger
	reader    *archive.Reader
	processor *normalizer.Processor
	progress  ProgressFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress overrides how progress bars are created.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// NewRunner validates cfg and prepares the reader and normalizer.
func NewRunner(cfg *config.Config, tok Tokenizer, log *logger.Logger, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	reader, err := archive.NewReader(cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}

	processor, err := normalizer.NewProcessor(normalizer.Options{
		Sentinel: cfg.Input.Sentinel,
		Tags:     cfg.Normalizer.MetadataTags,
	})
	if err != nil {
		return nil, err
	}

	showProgress := cfg.Logging.ShowProgress

	r := &Runner{
		cfg:       cfg,
		tok:       tok,
		log:       log,
		reader:    reader,
		processor: processor,
		progress: func(label string, total int) *progress.Bar {
			return progress.ForStderr(label, total, showProgress)
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run counts every archive in the input directory. Any failure aborts the
// whole run and no partial summary is returned.
func (r *Runner) Run() (*models.Summary, error) {
	archives, err := archive.Discover(r.cfg.Input.Dir, r.cfg.Input.Patterns)
	if err != nil {
		return nil, err
	}

	r.log.Info("Found archives to process",
		"count", len(archives),
		"dir", r.cfg.Input.Dir,
		"model", r.tok.Model(),
		"encoding", r.reader.Encoding(),
	)

	agg := report.NewAggregator()

	for _, a := range archives {
		fc, err := r.countArchive(a)
		if err != nil {
			return nil, err
		}

		agg.Add(fc)
	}

	return agg.Summary(r.tok.Model()), nil
}

func (r *Runner) countArchive(a models.Archive) (models.FileCount, error) {
	log := r.log.With("file", a.Name)
	start := time.Now()

	log.Debug("Reading archive", "state", "reading", "bytes", a.Size)

	content, err := r.reader.ReadAll(a.Path)
	if err != nil {
		return models.FileCount{}, err
	}

	log.Debug("Normalizing archive", "state", "normalizing")

	cleaned := r.processor.Process(content)

	log.Debug("Tokenizing archive", "state", "tokenizing", "instances", len(cleaned))

	bar := r.progress(a.Name, len(cleaned))
	docs, err := r.tok.Pipe(cleaned, r.cfg.Tokenizer.BatchSize, bar.Set)
	bar.Finish()

	if err != nil {
		return models.FileCount{}, fmt.Errorf("tokenizing %s: %w", a.Name, err)
	}

	if len(docs) != len(cleaned) {
		return models.FileCount{}, fmt.Errorf("tokenizing %s: got %d results for %d instances",
			a.Name, len(docs), len(cleaned))
	}

	fc := models.FileCount{
		Name:      a.Name,
		Instances: len(cleaned),
	}

	for _, d := range docs {
		fc.Tokens += d.Len()
		fc.Sentences += d.Sentences
	}

	log.Info("Finished archive",
		"state", "counted",
		"instances", fc.Instances,
		"tokens", fc.Tokens,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return fc, nil
}
