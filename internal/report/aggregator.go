// Package report aggregates per-file token counts and renders the final summary.
package report

import (
	"slices"
	"strings"

	"corpustok/internal/models"
)

// Aggregator accumulates per-file counts.
type Aggregator struct {
	files []models.FileCount
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add records the result of one archive.
func (a *Aggregator) Add(fc models.FileCount) {
	a.files = append(a.files, fc)
}

// Len returns the number of recorded files.
func (a *Aggregator) Len() int {
	return len(a.files)
}

// Summary returns the files sorted by name with their totals.
// GrandTotal is always the exact sum of the per-file token counts.
func (a *Aggregator) Summary(model string) *models.Summary {
	files := slices.Clone(a.files)
	slices.SortStableFunc(files, func(x, y models.FileCount) int {
		return strings.Compare(x.Name, y.Name)
	})

	s := &models.Summary{
		Model: model,
		Files: files,
	}

	for _, f := range files {
		s.GrandTotal += f.Tokens
		s.TotalInstances += f.Instances
		s.TotalSentences += f.Sentences
	}

	return s
}
