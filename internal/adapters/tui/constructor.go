// Package tui provides the interactive tab picker.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/edgetabs/internal/ui/output"
	"go.trai.ch/zerr"
)

// NewModel creates a picker model backed by query.
func NewModel(ctx context.Context, query QueryFunc) *Model {
	return &Model{ctx: ctx, query: query}
}

// Picker runs the picker as a bubbletea program.
type Picker struct {
	opts []tea.ProgramOption
}

// NewPicker creates a Picker rendering to w, or stderr if w is nil.
// Extra options are applied after the defaults.
func NewPicker(w io.Writer, opts ...tea.ProgramOption) *Picker {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.ColorProfile())
	return &Picker{opts: append([]tea.ProgramOption{tea.WithOutput(w)}, opts...)}
}

// Pick blocks until the user chooses an entry or cancels, starting from search.
// The returned model reports which of the two happened.
func (p *Picker) Pick(ctx context.Context, search string, query QueryFunc) (*Model, error) {
	model := NewModel(ctx, query)
	model.Search = search
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, zerr.Wrap(err, "picker failed")
	}
	if m, ok := final.(*Model); ok {
		return m, nil
	}
	return model, nil
}
