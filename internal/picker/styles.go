// ABOUTME: Lipgloss styles for the theme picker, one palette per background mode
// ABOUTME: The palette follows the resolved theme's dark flag, not the terminal

package picker

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the picker view.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Active   lipgloss.Style
	Muted    lipgloss.Style
	Badge    lipgloss.Style
	Filter   lipgloss.Style
	ErrorMsg lipgloss.Style
}

var (
	darkStyles  = buildStyles(true)
	lightStyles = buildStyles(false)
)

// StylesFor returns the palette for a dark or light theme.
func StylesFor(dark bool) Styles {
	if dark {
		return darkStyles
	}
	return lightStyles
}

func buildStyles(dark bool) Styles {
	fg, muted, accent, active, bad := "252", "243", "141", "84", "203"
	if !dark {
		fg, muted, accent, active, bad = "236", "245", "91", "28", "160"
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color(fg)),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color(active)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Badge:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color(accent)),
		Filter:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(accent)),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color(bad)),
	}
}
