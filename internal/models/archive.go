// Package models defines data structures shared by the reader, counter and reporter.
package models

// Archive is one article archive file found in the input directory.
type Archive struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// FileCount holds the counting result for a single archive.
type FileCount struct {
	Name      string `json:"name"`
	Instances int    `json:"instances"`
	Tokens    int    `json:"tokens"`
	Sentences int    `json:"sentences,omitempty"`
}

// Summary is the aggregated result of a run. Files are sorted by name.
type Summary struct {
	Model          string      `json:"model"`
	Files          []FileCount `json:"files"`
	GrandTotal     int         `json:"grandTotal"`
	TotalInstances int         `json:"totalInstances"`
	TotalSentences int         `json:"totalSentences,omitempty"`
}
