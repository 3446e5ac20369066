// ABOUTME: Error kinds produced by the theme manager
// ABOUTME: None are fatal; they reach callers only through LoadCatalog or the Reporter

package thememgr

import "errors"

var (
	// ErrCatalogLoad wraps a failure to fetch or decode the catalog.
	ErrCatalogLoad = errors.New("theme catalog load failed")

	// ErrUnknownTheme marks a selection of an id absent from the catalog.
	// Select ignores such requests; the error only appears in debug logs.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrPersist wraps a failed write of the active id to the store.
	ErrPersist = errors.New("persisting theme selection failed")
)
