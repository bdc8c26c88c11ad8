package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/edgetabs/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Blue).
			Foreground(lipgloss.Color("#FFFFFF"))

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Teal).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Blue).
			Bold(true)

	pinStyle = lipgloss.NewStyle().
			Foreground(style.Teal)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
