package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"corpustok/internal/formatter"
	"corpustok/internal/models"
)

const grandTotalLabel = "GRAND TOTAL (all files)"

// WriteTable writes the human-readable summary: one row per file, sorted by
// name, then the grand total.
func WriteTable(w io.Writer, s *models.Summary) error {
	p := message.NewPrinter(language.English)
	withSentences := s.TotalSentences > 0

	header := []string{"File", "Instances", "Tokens"}
	align := []formatter.Alignment{formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight}

	if withSentences {
		header = append(header, "Sentences")
		align = append(align, formatter.AlignRight)
	}

	rows := [][]string{header, nil}

	for _, f := range s.Files {
		row := []string{f.Name, p.Sprintf("%d", f.Instances), p.Sprintf("%d", f.Tokens)}
		if withSentences {
			row = append(row, p.Sprintf("%d", f.Sentences))
		}

		rows = append(rows, row)
	}

	total := []string{grandTotalLabel, p.Sprintf("%d", s.TotalInstances), p.Sprintf("%d", s.GrandTotal)}
	if withSentences {
		total = append(total, p.Sprintf("%d", s.TotalSentences))
	}

	rows = append(rows, nil, total)

	lines := formatter.AlignTable(rows, align)
	rule := strings.Repeat("=", runewidth.StringWidth(lines[0]))

	var sb strings.Builder

	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "FINAL AGGREGATED SUMMARY (ALL FILES)")
	fmt.Fprintf(&sb, "Model: %s\n", s.Model)
	fmt.Fprintln(&sb, rule)

	for _, line := range lines {
		fmt.Fprintln(&sb, line)
	}

	fmt.Fprintln(&sb, rule)

	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s *models.Summary) error {
	out := *s
	if out.Files == nil {
		out.Files = []models.FileCount{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Write renders s in the given format ("table" or "json").
func Write(w io.Writer, format string, s *models.Summary) error {
	switch format {
	case "json":
		return WriteJSON(w, s)
	case "table", "":
		return WriteTable(w, s)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
