// ABOUTME: Change notifications published by the theme manager
// ABOUTME: One Event per successful mutation or catalog load

package thememgr

import "github.com/mauromedda/themeswitch/pkg/tui/theme"

// EventKind distinguishes what changed.
type EventKind int

const (
	// EventSelected follows Select, Next, or Previous.
	EventSelected EventKind = iota + 1
	// EventCatalogLoaded follows a successful catalog load.
	EventCatalogLoaded
)

func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "selected"
	case EventCatalogLoaded:
		return "catalog_loaded"
	default:
		return "unknown"
	}
}

// Event is a snapshot of manager state taken right after the change.
// Theme is meaningful only when Found is true.
type Event struct {
	Kind     EventKind
	ActiveID string
	Theme    theme.Theme
	Found    bool
	Size     int
}
