// Package normalizer splits article archives into instances and strips their metadata headers.
package normalizer

import (
	"fmt"
	"strings"

	"corpustok/pkg/metadata"
)

// DefaultSentinel separates article instances inside an archive.
const DefaultSentinel = "<***>"

// Options configure a Processor.
type Options struct {
	Sentinel string
	Tags     []string
}

// DefaultOptions returns the settings used by the Croatian press archives.
func DefaultOptions() Options {
	return Options{
		Sentinel: DefaultSentinel,
		Tags:     metadata.DefaultTags,
	}
}

// Processor turns raw archive contents into cleaned article texts.
type Processor struct {
	cleaner  *Cleaner
	sentinel string
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts Options) (*Processor, error) {
	if err := NewValidator().Validate(opts); err != nil {
		return nil, fmt.Errorf("invalid normalizer options: %w", err)
	}

	return &Processor{
		cleaner:  NewCleaner(opts.Tags),
		sentinel: opts.Sentinel,
	}, nil
}

// Instances splits content into article instances.
func (p *Processor) Instances(content string) []string {
	return SplitInstances(content, p.sentinel)
}

// Clean strips the metadata of one instance.
func (p *Processor) Clean(instance string) string {
	return p.cleaner.Clean(instance)
}

// Headers returns the metadata fields of one instance.
func (p *Processor) Headers(instance string) [][2]string {
	return p.cleaner.Headers(instance)
}

// Process returns the cleaned text of every instance in content, in archive order.
func (p *Processor) Process(content string) []string {
	instances := p.Instances(content)
	cleaned := make([]string, 0, len(instances))

	for _, inst := range instances {
		cleaned = append(cleaned, p.cleaner.Clean(inst))
	}

	return cleaned
}

// SplitInstances splits content on sentinel and drops fragments that are empty
// or whitespace-only. Kept fragments are returned as-is.
func SplitInstances(content, sentinel string) []string {
	var instances []string

	for fragment := range strings.SplitSeq(content, sentinel) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		instances = append(instances, fragment)
	}

	return instances
}
