// Package metadata recognises the header lines newspaper archives put in front of each article.
package metadata

import (
	"strings"
	"unicode/utf8"
)

// DefaultTags are the field names the Croatian press archives use for article headers.
var DefaultTags = []string{
	"NOVINA:",
	"DATUM:",
	"RUBRIKA:",
	"NADNASLOV:",
	"NASLOV:",
	"PODNASLOV:",
	"STRANA:",
	"AUTOR(I):",
}

// Matcher decides whether a line is a metadata header.
type Matcher struct {
	tags    []string
	lowered []string
}

// NewMatcher creates a matcher for the given tags. Matching is case-insensitive.
func NewMatcher(tags []string) *Matcher {
	m := &Matcher{
		tags:    make([]string, len(tags)),
		lowered: make([]string, len(tags)),
	}

	copy(m.tags, tags)

	for i, tag := range tags {
		m.lowered[i] = strings.ToLower(tag)
	}

	return m
}

// IsHeader reports whether the trimmed line starts with one of the tags.
// Content after the tag on the same line belongs to the header.
func (m *Matcher) IsHeader(line string) bool {
	stripped := strings.ToLower(strings.TrimSpace(line))
	if stripped == "" {
		return false
	}

	for _, tag := range m.lowered {
		if strings.HasPrefix(stripped, tag) {
			return true
		}
	}

	return false
}

// Field splits a header line into its tag (as configured) and the value following it.
// It matches exactly the lines IsHeader accepts.
func (m *Matcher) Field(line string) (tag, value string, ok bool) {
	stripped := strings.TrimSpace(line)
	lowered := strings.ToLower(stripped)

	for i, t := range m.lowered {
		if !strings.HasPrefix(lowered, t) {
			continue
		}

		// ToLower maps rune by rune, so the tag covers the same number of
		// runes in the original line even when byte lengths differ.
		return m.tags[i], strings.TrimSpace(skipRunes(stripped, utf8.RuneCountInString(t))), true
	}

	return "", "", false
}

func skipRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}

	return ""
}

// Tags returns a copy of the configured tags.
func (m *Matcher) Tags() []string {
	out := make([]string, len(m.tags))
	copy(out, m.tags)

	return out
}
