package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/edgetabs/internal/core/domain"
)

// QueryFunc returns the tab entries matching search, best first.
type QueryFunc func(ctx context.Context, search string) []domain.TabEntry

// MsgResults carries the entries of a finished query.
type MsgResults struct {
	Search  string
	Entries []domain.TabEntry
}

// Model is the state of the interactive tab picker.
type Model struct {
	ctx   context.Context
	query QueryFunc

	Search      string
	Entries     []domain.TabEntry
	SelectedIdx int
	ListOffset  int
	ListHeight  int

	// Chosen is set when the user confirms a selection.
	Chosen    *domain.TabEntry
	Cancelled bool
}

// Init runs the initial, unfiltered query.
func (m *Model) Init() tea.Cmd {
	return m.search()
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per key binding
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if entry, ok := m.selected(); ok {
				m.Chosen = &entry
				return m, tea.Quit
			}
		case tea.KeyUp, tea.KeyCtrlP:
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.ensureVisible()
			}
		case tea.KeyDown, tea.KeyCtrlN:
			if m.SelectedIdx < len(m.Entries)-1 {
				m.SelectedIdx++
				m.ensureVisible()
			}
		case tea.KeyBackspace:
			if m.Search != "" {
				runes := []rune(m.Search)
				m.Search = string(runes[:len(runes)-1])
				return m, m.search()
			}
		case tea.KeySpace:
			m.Search += " "
			return m, m.search()
		case tea.KeyRunes:
			m.Search += string(msg.Runes)
			return m, m.search()
		}

	case tea.WindowSizeMsg:
		header := lipgloss.Height(titleStyle.Render("TABS")) + 2
		m.ListHeight = max(msg.Height-header, 1)
		m.ensureVisible()

	case MsgResults:
		if msg.Search != m.Search {
			// Superseded by a later keystroke.
			return m, nil
		}
		m.Entries = msg.Entries
		m.SelectedIdx = 0
		m.ListOffset = 0
	}

	return m, nil
}

func (m *Model) search() tea.Cmd {
	search := m.Search
	return func() tea.Msg {
		return MsgResults{Search: search, Entries: m.query(m.ctx, search)}
	}
}

func (m *Model) selected() (domain.TabEntry, bool) {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Entries) {
		return m.Entries[m.SelectedIdx], true
	}
	return domain.TabEntry{}, false
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}
