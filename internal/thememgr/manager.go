// ABOUTME: Theme manager owning the catalog and the active theme id
// ABOUTME: Mutations update memory, persist, then notify subscribers, in that order

package thememgr

import (
	"context"
	"fmt"
	"sync"

	"github.com/mauromedda/themeswitch/internal/catalog"
	"github.com/mauromedda/themeswitch/internal/eventbus"
	"github.com/mauromedda/themeswitch/internal/log"
	"github.com/mauromedda/themeswitch/internal/store"
	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// Defaults applied when Options leaves a field empty.
const (
	DefaultThemeID    = "dracula"
	DefaultStorageKey = "gothememe-theme"
)

// Options configures a Manager.
type Options struct {
	// DefaultThemeID is active when the store holds no selection.
	DefaultThemeID string
	// StorageKey is the store key holding the active id.
	StorageKey string
	Loader     catalog.Loader
	// Store defaults to an in-memory store.
	Store store.Store
	// Reporter receives non-fatal failures. Defaults to the log package.
	Reporter func(error)
}

// Manager tracks the theme catalog and the active selection.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	catalog  theme.Catalog
	activeID string

	defaultID  string
	storageKey string
	loader     catalog.Loader
	store      store.Store
	report     func(error)
	bus        *eventbus.Bus[Event]
}

// New builds a Manager and rehydrates the active id from the store.
// It never writes to the store; an unreadable value counts as absent.
func New(opts Options) *Manager {
	m := &Manager{
		defaultID:  opts.DefaultThemeID,
		storageKey: opts.StorageKey,
		loader:     opts.Loader,
		store:      opts.Store,
		report:     opts.Reporter,
		bus:        eventbus.New[Event](),
	}
	if m.defaultID == "" {
		m.defaultID = DefaultThemeID
	}
	if m.storageKey == "" {
		m.storageKey = DefaultStorageKey
	}
	if m.store == nil {
		m.store = store.NewMemory()
	}
	if m.report == nil {
		m.report = log.Reporter("thememgr")
	}

	m.activeID = m.defaultID
	stored, found, err := m.store.Get(m.storageKey)
	switch {
	case err != nil:
		m.report(fmt.Errorf("reading %q: %w", m.storageKey, err))
	case found && stored != "":
		m.activeID = stored
	}
	log.Debug("thememgr: initial theme %q", m.activeID)
	return m
}

// LoadCatalog fetches the catalog and replaces the current one wholesale.
// On failure the catalog is left as it was and the error is both reported
// and returned, wrapped in ErrCatalogLoad.
func (m *Manager) LoadCatalog(ctx context.Context) error {
	if m.loader == nil {
		err := fmt.Errorf("%w: no loader configured", ErrCatalogLoad)
		m.report(err)
		return err
	}

	themes, err := m.loader.FetchThemes(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrCatalogLoad, err)
		m.report(err)
		return err
	}

	m.mu.Lock()
	m.catalog = theme.Catalog(themes).Clone()
	ev := m.snapshotLocked(EventCatalogLoaded)
	m.mu.Unlock()

	log.Info("thememgr: loaded %d themes", ev.Size)
	m.bus.Publish(ev)
	return nil
}

// LoadCatalogAsync runs LoadCatalog on its own goroutine. The returned
// channel yields the result once and is then closed. Concurrent loads race;
// whichever completes last determines the catalog.
func (m *Manager) LoadCatalogAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- m.LoadCatalog(ctx)
	}()
	return done
}

// Select makes id active. It reports false and changes nothing when id is
// not in the catalog.
func (m *Manager) Select(id string) bool {
	m.mu.Lock()
	if !m.catalog.Contains(id) {
		m.mu.Unlock()
		log.Debug("thememgr: ignoring select: %v: %q", ErrUnknownTheme, id)
		return false
	}
	return m.commitLocked(id)
}

// Next activates the theme after the current one, wrapping at the end.
// An unresolvable active id advances to the first theme.
func (m *Manager) Next() bool {
	m.mu.Lock()
	n := len(m.catalog)
	if n == 0 {
		m.mu.Unlock()
		return false
	}
	i := m.catalog.Index(m.activeID)
	return m.commitLocked(m.catalog[(i+1)%n].ID)
}

// Previous activates the theme before the current one, wrapping at the
// start. An unresolvable active id moves to the last theme.
func (m *Manager) Previous() bool {
	m.mu.Lock()
	n := len(m.catalog)
	if n == 0 {
		m.mu.Unlock()
		return false
	}
	i := max(m.catalog.Index(m.activeID), 0)
	return m.commitLocked(m.catalog[(i-1+n)%n].ID)
}

// commitLocked sets and persists id, releases the lock, then notifies.
// The caller must hold m.mu for writing.
func (m *Manager) commitLocked(id string) bool {
	m.activeID = id
	if err := m.store.Set(m.storageKey, id); err != nil {
		m.report(fmt.Errorf("%w: %w", ErrPersist, err))
	}
	ev := m.snapshotLocked(EventSelected)
	m.mu.Unlock()

	m.bus.Publish(ev)
	return true
}

func (m *Manager) snapshotLocked(kind EventKind) Event {
	t, ok := m.catalog.Find(m.activeID)
	return Event{
		Kind:     kind,
		ActiveID: m.activeID,
		Theme:    t,
		Found:    ok,
		Size:     len(m.catalog),
	}
}

// Current returns the catalog member matching the active id.
func (m *Manager) Current() (theme.Theme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Find(m.activeID)
}

// IsDarkMode reports whether the resolved theme is dark. With no resolved
// theme it reports true.
func (m *Manager) IsDarkMode() bool {
	t, ok := m.Current()
	if !ok {
		return true
	}
	return t.IsDark
}

// ActiveID returns the active id, which may not resolve.
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

// Catalog returns a copy of the loaded catalog.
func (m *Manager) Catalog() theme.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Clone()
}

// Loaded reports whether a non-empty catalog is present.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.catalog) > 0
}

// StorageKey returns the key the active id is persisted under.
func (m *Manager) StorageKey() string { return m.storageKey }

// Subscribe registers fn for change events. Handlers run synchronously on
// the mutating goroutine, in subscription order, after the store write.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.bus.Subscribe(fn)
}

// Close drops all subscribers. The manager stays usable but notifies no one.
func (m *Manager) Close() {
	m.bus.Close()
}
