// Package style provides shared UI styling primitives including status
// colors and icons for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Status styles.
var (
	Success = lipgloss.NewStyle().Foreground(Green)
	Failure = lipgloss.NewStyle().Foreground(Red)
	Killed  = lipgloss.NewStyle().Foreground(Yellow)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
)
