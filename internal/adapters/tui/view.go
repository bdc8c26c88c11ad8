package tui

import (
	"strings"

	"go.trai.ch/edgetabs/internal/ui/style"
)

const defaultListHeight = 10

// View renders the UI.
func (m *Model) View() string {
	if m.Chosen != nil || m.Cancelled {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("TABS") + "\n")
	s.WriteString(promptStyle.Render(style.Pointer+" ") + m.Search + "\n\n")

	if len(m.Entries) == 0 {
		s.WriteString(hintStyle.Render("no matching tabs") + "\n")
		return s.String()
	}

	height := m.ListHeight
	if height <= 0 {
		height = defaultListHeight
	}
	start := min(m.ListOffset, len(m.Entries))
	end := min(start+height, len(m.Entries))

	for i := start; i < end; i++ {
		s.WriteString(m.row(i) + "\n")
	}
	return s.String()
}

func (m *Model) row(index int) string {
	entry := m.Entries[index]

	icon := style.Dot
	if entry.Pinned {
		icon = pinStyle.Render(style.Pin)
	}

	cursor := "  "
	text := entry.Title
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render(style.Pointer + " ")
		text = selectedStyle.Render(entry.Title)
	}

	return cursor + icon + " " + text + " " + hintStyle.Render(entry.Window.String())
}
