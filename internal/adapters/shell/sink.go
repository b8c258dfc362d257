package shell

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wsu/internal/core/ports"
)

var _ ports.LogSink = (*ConsoleSink)(nil)

// palette is the fixed set of prefix colors; LogColorIndex selects into it
// by insertion order, cycling once every package name has been seen.
var palette = []lipgloss.Color{
	lipgloss.Color("36"),  // cyan
	lipgloss.Color("35"),  // magenta
	lipgloss.Color("33"),  // yellow
	lipgloss.Color("32"),  // green
	lipgloss.Color("34"),  // blue
	lipgloss.Color("31"),  // red
	lipgloss.Color("96"),  // bright cyan
	lipgloss.Color("95"),  // bright magenta
}

// ConsoleSink multiplexes child-process output lines to stdout, tagging each
// with a colored package prefix. Concurrent writers are safe: line assembly
// happens inside each caller before WriteLine is invoked, so only the final
// write needs serializing.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink creates a ConsoleSink writing to os.Stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: os.Stdout}
}

// SetSinkOutput redirects a sink's output, used by tests to capture lines.
func SetSinkOutput(s *ConsoleSink, w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// PrefixStyle returns the lipgloss style for colorIndex, cycling through the palette.
func PrefixStyle(colorIndex int) lipgloss.Style {
	color := palette[colorIndex%len(palette)]
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// WriteLine writes a single tagged line. Stderr lines are rendered with a
// red line body to visually distinguish them; stdout lines are not
// re-colored beyond their prefix.
func (s *ConsoleSink) WriteLine(prefix string, colorIndex int, isStderr, withTimestamp bool, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	styledPrefix := PrefixStyle(colorIndex).Render(prefix)
	body := line
	if isStderr {
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(line)
	}

	if withTimestamp {
		fmt.Fprintf(s.out, "%s %s %s\n", time.Now().Format("15:04:05.000"), styledPrefix, body) //nolint:errcheck // best effort console write
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", styledPrefix, body) //nolint:errcheck // best effort console write
}
