// Package style provides the shared colors and icons used for terminal
// output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Teal   = lipgloss.Color("#0D9488")
	Stone  = lipgloss.Color("#78716C")
	Amber  = lipgloss.Color("#D97706")
	Rose   = lipgloss.Color("#E11D48")
	Moss   = lipgloss.Color("#4D7C0F")
	Cloud  = lipgloss.Color("#F5F5F4")
	Carbon = lipgloss.Color("#1C1917")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)
