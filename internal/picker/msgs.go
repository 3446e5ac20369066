// ABOUTME: Bubble Tea messages understood by the picker model
// ABOUTME: ChangedMsg comes from the Bridge; LoadFailedMsg from the load command

package picker

import "github.com/mauromedda/themeswitch/internal/thememgr"

// ChangedMsg carries a manager event into the program.
type ChangedMsg struct {
	Event thememgr.Event
}

// LoadFailedMsg reports that the catalog could not be loaded.
type LoadFailedMsg struct {
	Err error
}
