// Package linear prints tab listings one line per tab, for pipes and CI.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/ui/output"
	"go.trai.ch/edgetabs/internal/ui/style"
)

// Options selects the columns of a listing.
type Options struct {
	// Grouped prints a header per window and lists its tabs below it.
	Grouped bool
	IDs     bool
	Scores  bool
}

// Renderer writes listings to stdout and the summary line to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
}

// NewRenderer creates a Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.New(stdout),
	}
}

// Render prints entries in the given order.
func (r *Renderer) Render(entries []domain.TabEntry, opts Options) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(r.stderr, "no tabs")
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Title))
	}

	for i, e := range entries {
		if opts.Grouped && (i == 0 || e.Window != entries[i-1].Window) {
			header := r.out.String(e.Window.String()).Bold().String() + " " + r.faint(e.Layout.String())
			_, _ = fmt.Fprintln(r.stdout, header)
		}
		r.line(e, width, opts)
	}

	_, _ = fmt.Fprintf(r.stderr, "%d tab(s) in %d window(s)\n", len(entries), distinctWindows(entries))
}

// Activated reports a successful activation.
func (r *Renderer) Activated(entry domain.TabEntry) {
	check := r.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", check, entry.Title)
}

func (r *Renderer) line(e domain.TabEntry, width int, opts Options) {
	var b strings.Builder
	if opts.Grouped {
		b.WriteString("  ")
	}

	if e.Pinned {
		b.WriteString(r.out.String(style.Pin).Foreground(termenv.RGBColor(string(style.Teal))).String())
	} else {
		b.WriteString(r.out.String(style.Dot).Foreground(termenv.RGBColor(string(style.Blue))).String())
	}
	b.WriteString(" ")
	b.WriteString(e.Title)

	var columns []string
	if !opts.Grouped {
		columns = append(columns, e.Window.String())
	}
	if opts.Scores {
		columns = append(columns, fmt.Sprintf("%4d", e.Score))
	}
	if opts.IDs {
		columns = append(columns, e.ID)
	}
	if len(columns) > 0 {
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(e.Title)+2))
		b.WriteString(r.faint(strings.Join(columns, "  ")))
	}

	_, _ = fmt.Fprintln(r.stdout, b.String())
}

func (r *Renderer) faint(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).String()
}

func distinctWindows(entries []domain.TabEntry) int {
	seen := make(map[domain.WindowHandle]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Window] = struct{}{}
	}
	return len(seen)
}
