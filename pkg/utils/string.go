// Package utils provides small text helpers for command output.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace replaces runs of whitespace with a single space.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateString shortens str to at most width display columns, ending it
// with "..." when anything was cut. A non-positive width disables truncation.
func TruncateString(str string, width int) string {
	if width <= 0 || runewidth.StringWidth(str) <= width {
		return str
	}

	return runewidth.Truncate(str, width, "...")
}
