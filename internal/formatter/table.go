// Package formatter provides text table formatting utilities.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// minColumnWidth keeps separator rows at least "---" wide.
const minColumnWidth = 3

// AlignTable renders rows as a pipe table with columns padded to the widest
// cell, measured in display width. A nil row is rendered as a separator.
// Columns not covered by align are left-aligned.
func AlignTable(rows [][]string, align []Alignment) []string {
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}

	if colCount == 0 {
		return nil
	}

	// 1. Calculate max widths (using display width)
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	for _, row := range rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	// 2. Reconstruct lines
	result := make([]string, 0, len(rows))

	for _, row := range rows {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			if row == nil {
				sb.WriteString(strings.Repeat("-", colWidths[j]))
				sb.WriteString(" |")

				continue
			}

			content := ""
			if j < len(row) {
				content = row[j]
			}

			padding := strings.Repeat(" ", colWidths[j]-runewidth.StringWidth(content))

			if j < len(align) && align[j] == AlignRight {
				sb.WriteString(padding)
				sb.WriteString(content)
			} else {
				sb.WriteString(content)
				sb.WriteString(padding)
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}
