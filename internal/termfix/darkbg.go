// ABOUTME: Presets lipgloss to a dark background before BubbleTea's init() sends OSC queries
// ABOUTME: SetDark later aligns adaptive colors with the resolved theme's dark flag

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Dark is the documented default until a theme resolves. Setting it
	// here also stops BubbleTea's init() from querying the terminal
	// (OSC 10/11): with an explicit background, the sync.Once that
	// fires the query is skipped.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}

// SetDark tells lipgloss which background the active theme implies.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// Dark reports the background lipgloss currently assumes.
func Dark() bool {
	return lipgloss.HasDarkBackground()
}
