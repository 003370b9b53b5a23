package normalizer

import (
	"strings"

	"corpustok/pkg/metadata"
)

// Cleaner removes metadata header lines from a single article instance.
type Cleaner struct {
	matcher *metadata.Matcher
}

// NewCleaner creates a cleaner that drops lines starting with any of tags.
func NewCleaner(tags []string) *Cleaner {
	return &Cleaner{
		matcher: metadata.NewMatcher(tags),
	}
}

// Clean returns the non-blank, non-header lines of instance joined by single spaces.
func (c *Cleaner) Clean(instance string) string {
	trimmed := strings.TrimSpace(instance)
	if trimmed == "" {
		return ""
	}

	var kept []string

	for line := range strings.SplitSeq(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || c.matcher.IsHeader(line) {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, " ")
}

// Headers returns the header lines of instance as tag/value pairs, in order.
func (c *Cleaner) Headers(instance string) [][2]string {
	var headers [][2]string

	for line := range strings.SplitSeq(instance, "\n") {
		if tag, value, ok := c.matcher.Field(line); ok {
			headers = append(headers, [2]string{tag, value})
		}
	}

	return headers
}
