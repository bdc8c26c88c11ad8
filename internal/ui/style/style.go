// Package style holds the colors and icons shared by the logger, the listing and the picker.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Blue   = lipgloss.Color("#0078D4")
	Teal   = lipgloss.Color("#2BC4A9")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Pointer = "›"
	Pin     = "◆"
	Dot     = "●"
)
