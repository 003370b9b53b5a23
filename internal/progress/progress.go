// Package progress renders a single-line progress bar for per-file tokenization.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	barWidth      = 24
	minLabelWidth = 16
	defaultWidth  = 80
)

// Bar draws "label  42% |██████    | 210/500" on one line, redrawn in place.
// A disabled bar writes nothing.
type Bar struct {
	w       io.Writer
	label   string
	total   int
	width   int
	enabled bool
	drawn   bool
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or 80 when unknown.
func TerminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}

	return defaultWidth
}

// New creates a bar for total items.
func New(w io.Writer, label string, total, width int, enabled bool) *Bar {
	if width <= 0 {
		width = defaultWidth
	}

	return &Bar{
		w:       w,
		label:   label,
		total:   total,
		width:   width,
		enabled: enabled,
	}
}

// ForStderr creates a bar on stderr, enabled only when stderr is a terminal.
func ForStderr(label string, total int, enabled bool) *Bar {
	return New(os.Stderr, label, total, TerminalWidth(os.Stderr), enabled && IsTerminal(os.Stderr))
}

// Set redraws the bar with done items completed.
func (b *Bar) Set(done int) {
	if !b.enabled {
		return
	}

	fmt.Fprintf(b.w, "\r%s", b.render(done)) //nolint:errcheck
	b.drawn = true
}

// Finish clears the bar line.
func (b *Bar) Finish() {
	if !b.enabled || !b.drawn {
		return
	}

	fmt.Fprintf(b.w, "\r%s\r", strings.Repeat(" ", b.width-1)) //nolint:errcheck
	b.drawn = false
}

func (b *Bar) render(done int) string {
	done = max(0, min(done, b.total))

	counter := fmt.Sprintf("| %d/%d", done, b.total)
	room := b.width - 1 - runewidth.StringWidth(" 100% |") - runewidth.StringWidth(counter)
	labelWidth := runewidth.StringWidth(b.label)

	// The bar gives up cells before the label is cut below minLabelWidth.
	cells := barWidth
	if room-labelWidth < cells {
		cells = min(barWidth, max(room-min(labelWidth, minLabelWidth), 0))
	}

	percent := 100
	filled := cells

	if b.total > 0 {
		percent = done * 100 / b.total
		filled = done * cells / b.total
	}

	label := b.label
	if labelRoom := room - cells; labelRoom < labelWidth {
		label = runewidth.Truncate(label, max(labelRoom, 0), "…")
	}

	return fmt.Sprintf("%s %3d%% |%s%s%s",
		label,
		percent,
		strings.Repeat("█", filled),
		strings.Repeat(" ", cells-filled),
		counter)
}
