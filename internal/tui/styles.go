package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
//
//nolint:gochecknoglobals // Lipgloss colors and styles are package-level by convention
var (
	ColorHeader    = lipgloss.Color("39")  // blue
	ColorLabel     = lipgloss.Color("245") // grey
	ColorValue     = lipgloss.Color("252") // near-white
	ColorOK        = lipgloss.Color("42")  // green
	ColorWarning   = lipgloss.Color("214") // orange
	ColorHighlight = lipgloss.Color("205") // pink
	ColorMuted     = lipgloss.Color("240") // dark grey
)

// Shared styles.
//
//nolint:gochecknoglobals // Lipgloss colors and styles are package-level by convention
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusStyle  = lipgloss.NewStyle().Foreground(ColorHighlight)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// ModeColor returns the accent color used for a transport mode row.
func ModeColor(mode string) lipgloss.Color {
	switch mode {
	case "bicycle":
		return ColorOK
	case "car":
		return ColorWarning
	case "bus":
		return ColorHeader
	case "truck":
		return ColorHighlight
	default:
		return ColorValue
	}
}
