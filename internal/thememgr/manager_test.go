// ABOUTME: Tests for the theme manager: rehydration, select, cycling, loading, notification
// ABOUTME: Uses in-package fakes for the store and loader

package thememgr

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/mauromedda/themeswitch/internal/catalog"
	"github.com/mauromedda/themeswitch/internal/store"
	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

var abc = catalog.Static{
	{ID: "a", DisplayName: "Alpha", IsDark: true},
	{ID: "b", DisplayName: "Beta", IsDark: false},
	{ID: "c", DisplayName: "Gamma", IsDark: true},
}

// recordingStore wraps Memory and logs every write into a shared journal.
type recordingStore struct {
	*store.Memory
	mu      sync.Mutex
	writes  []string
	journal *[]string
	setErr  error
	getErr  error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Memory: store.NewMemory()}
}

func (s *recordingStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.Memory.Get(key)
}

func (s *recordingStore) Set(key, value string) error {
	s.mu.Lock()
	s.writes = append(s.writes, value)
	if s.journal != nil {
		*s.journal = append(*s.journal, "persist:"+value)
	}
	s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	return s.Memory.Set(key, value)
}

func (s *recordingStore) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

type errCollector struct {
	mu   sync.Mutex
	errs []error
}

func (c *errCollector) Report(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

func (c *errCollector) All() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]error(nil), c.errs...)
}

func newLoaded(t *testing.T, active string) (*Manager, *recordingStore) {
	t.Helper()
	st := newRecordingStore()
	if active != "" {
		_ = st.Memory.Set(DefaultStorageKey, active)
	}
	m := New(Options{DefaultThemeID: "a", Loader: abc, Store: st, Reporter: func(error) {}})
	if err := m.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	return m, st
}

func TestNew_Rehydration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"stored value wins", "b", "b"},
		{"no stored value uses default", "", "a"},
		{"stored id need not resolve", "zzz", "zzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := newRecordingStore()
			if tt.stored != "" {
				_ = st.Memory.Set("k", tt.stored)
			}
			m := New(Options{DefaultThemeID: "a", StorageKey: "k", Store: st})
			if got := m.ActiveID(); got != tt.want {
				t.Errorf("ActiveID() = %q; want %q", got, tt.want)
			}
			if w := st.Writes(); len(w) != 0 {
				t.Errorf("New() wrote %v; want no writes", w)
			}
		})
	}
}

func TestNew_UnreadableStoreIsAbsent(t *testing.T) {
	t.Parallel()

	st := newRecordingStore()
	st.getErr = errors.New("disk on fire")
	var ec errCollector
	m := New(Options{DefaultThemeID: "a", Store: st, Reporter: ec.Report})

	if got := m.ActiveID(); got != "a" {
		t.Errorf("ActiveID() = %q; want default a", got)
	}
	if len(ec.All()) != 1 {
		t.Errorf("reported %d errors; want 1", len(ec.All()))
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	if m.ActiveID() != DefaultThemeID {
		t.Errorf("ActiveID() = %q; want %q", m.ActiveID(), DefaultThemeID)
	}
	if m.StorageKey() != DefaultStorageKey {
		t.Errorf("StorageKey() = %q; want %q", m.StorageKey(), DefaultStorageKey)
	}
	if _, ok := m.Current(); ok {
		t.Error("Current() should be absent before load")
	}
	if !m.IsDarkMode() {
		t.Error("IsDarkMode() should default to true")
	}
}

func TestSelect_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "b")
	var events int
	m.Subscribe(func(Event) { events++ })

	before, _ := m.Current()
	if m.Select("nope") {
		t.Error("Select(unknown) = true; want false")
	}
	after, _ := m.Current()
	if m.ActiveID() != "b" || before != after {
		t.Errorf("state changed: active %q, theme %+v", m.ActiveID(), after)
	}
	if len(st.Writes()) != 0 || events != 0 {
		t.Errorf("writes %v, events %d; want none", st.Writes(), events)
	}
}

func TestSelect_BeforeLoadIsNoOp(t *testing.T) {
	t.Parallel()

	st := newRecordingStore()
	m := New(Options{DefaultThemeID: "a", Loader: abc, Store: st})
	if m.Select("a") || m.Next() || m.Previous() {
		t.Error("mutations on empty catalog should be no-ops")
	}
	if len(st.Writes()) != 0 {
		t.Errorf("writes = %v; want none", st.Writes())
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "a")
	if !m.Select("c") {
		t.Fatal("Select(c) = false")
	}
	cur, ok := m.Current()
	if !ok || cur.ID != "c" || cur.DisplayName != "Gamma" {
		t.Errorf("Current() = %+v, %v", cur, ok)
	}
	if !reflect.DeepEqual(st.Writes(), []string{"c"}) {
		t.Errorf("writes = %v; want [c]", st.Writes())
	}
}

func TestSelect_SameIDStillPersists(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "a")
	m.Select("a")
	if !reflect.DeepEqual(st.Writes(), []string{"a"}) {
		t.Errorf("writes = %v; want [a]", st.Writes())
	}
}

func TestNext_Sequence(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	for _, want := range []string{"b", "c", "a"} {
		m.Next()
		if got := m.ActiveID(); got != want {
			t.Fatalf("Next() -> %q; want %q", got, want)
		}
	}
}

func TestPrevious_WrapsToEnd(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	m.Previous()
	if got := m.ActiveID(); got != "c" {
		t.Errorf("Previous() -> %q; want c", got)
	}
}

func TestCycling_UnresolvedActiveID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(*Manager) bool
		want string
	}{
		{"next goes to first", (*Manager).Next, "a"},
		{"previous goes to last", (*Manager).Previous, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, _ := newLoaded(t, "stale")
			if !tt.op(m) {
				t.Fatal("op returned false")
			}
			if got := m.ActiveID(); got != tt.want {
				t.Errorf("ActiveID() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCycling_Properties(t *testing.T) {
	t.Parallel()

	catalogs := []catalog.Static{
		{{ID: "solo"}},
		{{ID: "x"}, {ID: "y"}},
		abc,
		{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}},
	}
	for _, c := range catalogs {
		for _, start := range theme.Catalog(c).IDs() {
			st := store.NewMemory()
			_ = st.Set(DefaultStorageKey, start)
			m := New(Options{Loader: c, Store: st})
			if err := m.LoadCatalog(context.Background()); err != nil {
				t.Fatal(err)
			}

			for range len(c) {
				m.Next()
			}
			if got := m.ActiveID(); got != start {
				t.Errorf("len %d: %d x Next() from %q ended at %q", len(c), len(c), start, got)
			}

			m.Previous()
			m.Next()
			if got := m.ActiveID(); got != start {
				t.Errorf("len %d: Previous+Next from %q ended at %q", len(c), start, got)
			}
			m.Next()
			m.Previous()
			if got := m.ActiveID(); got != start {
				t.Errorf("len %d: Next+Previous from %q ended at %q", len(c), start, got)
			}
		}
	}
}

func TestMutations_ExactlyOneWriteEach(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "a")
	m.Next()
	m.Previous()
	m.Select("c")
	m.Select("missing")
	m.Next()

	want := []string{"b", "a", "c", "a"}
	if !reflect.DeepEqual(st.Writes(), want) {
		t.Errorf("writes = %v; want %v", st.Writes(), want)
	}
}

func TestLoadCatalog_Failure(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	var ec errCollector
	m := New(Options{
		DefaultThemeID: "a",
		Loader: catalog.LoaderFunc(func(context.Context) ([]theme.Theme, error) {
			return nil, boom
		}),
		Reporter: ec.Report,
	})

	var events int
	m.Subscribe(func(Event) { events++ })

	err := m.LoadCatalog(context.Background())
	if !errors.Is(err, ErrCatalogLoad) || !errors.Is(err, boom) {
		t.Errorf("LoadCatalog() err = %v; want ErrCatalogLoad wrapping cause", err)
	}
	if len(m.Catalog()) != 0 {
		t.Errorf("Catalog() = %v; want empty", m.Catalog())
	}
	if _, ok := m.Current(); ok {
		t.Error("Current() should be absent")
	}
	if !m.IsDarkMode() {
		t.Error("IsDarkMode() = false; want true")
	}
	if events != 0 {
		t.Errorf("events = %d; want 0", events)
	}
	if errs := ec.All(); len(errs) != 1 || !errors.Is(errs[0], ErrCatalogLoad) {
		t.Errorf("reported %v; want one ErrCatalogLoad", errs)
	}
	// Still usable.
	if m.Next() {
		t.Error("Next() on empty catalog should be a no-op")
	}
}

func TestLoadCatalog_NoLoader(t *testing.T) {
	t.Parallel()

	m := New(Options{Reporter: func(error) {}})
	if err := m.LoadCatalog(context.Background()); !errors.Is(err, ErrCatalogLoad) {
		t.Errorf("LoadCatalog() err = %v; want ErrCatalogLoad", err)
	}
}

func TestLoadCatalog_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	calls := 0
	loader := catalog.LoaderFunc(func(context.Context) ([]theme.Theme, error) {
		calls++
		if calls == 1 {
			return abc, nil
		}
		return []theme.Theme{{ID: "z", IsDark: false}}, nil
	})
	m := New(Options{DefaultThemeID: "a", Loader: loader})

	var kinds []EventKind
	m.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	_ = m.LoadCatalog(context.Background())
	if !m.Loaded() || len(m.Catalog()) != 3 {
		t.Fatalf("Catalog() = %v", m.Catalog())
	}
	_ = m.LoadCatalog(context.Background())
	if got := m.Catalog().IDs(); !reflect.DeepEqual(got, []string{"z"}) {
		t.Errorf("Catalog().IDs() = %v; want [z]", got)
	}
	if _, ok := m.Current(); ok {
		t.Error("Current() should be absent when active id left the catalog")
	}
	if m.ActiveID() != "a" {
		t.Errorf("reload must not touch ActiveID, got %q", m.ActiveID())
	}
	if !reflect.DeepEqual(kinds, []EventKind{EventCatalogLoaded, EventCatalogLoaded}) {
		t.Errorf("events = %v", kinds)
	}
}

func TestCatalog_IsACopy(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	c := m.Catalog()
	c[0].ID = "mutated"
	if m.Catalog()[0].ID != "a" {
		t.Error("Catalog() must return a copy")
	}
}

func TestIsDarkMode(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	if !m.IsDarkMode() {
		t.Error("a is dark")
	}
	m.Select("b")
	if m.IsDarkMode() {
		t.Error("b is light")
	}
}

func TestPersistBeforeNotify(t *testing.T) {
	t.Parallel()

	var journal []string
	st := newRecordingStore()
	st.journal = &journal
	m := New(Options{DefaultThemeID: "a", Loader: abc, Store: st})
	_ = m.LoadCatalog(context.Background())

	m.Subscribe(func(e Event) {
		v, _, _ := st.Memory.Get(DefaultStorageKey)
		journal = append(journal, "notify:"+e.ActiveID+":stored="+v)
	})
	m.Next()

	want := []string{"persist:b", "notify:b:stored=b"}
	if !reflect.DeepEqual(journal, want) {
		t.Errorf("journal = %v; want %v", journal, want)
	}
}

func TestSubscribe_OrderAndSnapshot(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	var got []string
	for _, name := range []string{"first", "second", "third"} {
		m.Subscribe(func(e Event) {
			got = append(got, name)
			if e.Kind != EventSelected || e.ActiveID != "c" || !e.Found || e.Theme.DisplayName != "Gamma" || e.Size != 3 {
				t.Errorf("%s got event %+v", name, e)
			}
			// Handlers run outside the lock and may read back.
			if m.ActiveID() != "c" {
				t.Errorf("%s: ActiveID() = %q inside handler", name, m.ActiveID())
			}
		})
	}
	m.Select("c")
	if !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("delivery order = %v", got)
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	t.Parallel()

	m, _ := newLoaded(t, "a")
	var n int
	unsub := m.Subscribe(func(Event) { n++ })
	m.Next()
	unsub()
	unsub()
	m.Next()
	if n != 1 {
		t.Errorf("deliveries = %d; want 1", n)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "a")
	var n int
	m.Subscribe(func(Event) { n++ })
	m.Close()
	m.Close()

	if !m.Next() {
		t.Error("Next() after Close should still work")
	}
	if n != 0 {
		t.Errorf("deliveries after Close = %d; want 0", n)
	}
	if !reflect.DeepEqual(st.Writes(), []string{"b"}) {
		t.Errorf("writes = %v; want [b]", st.Writes())
	}
	m.Subscribe(func(Event) { n++ })
	m.Next()
	if n != 0 {
		t.Error("Subscribe after Close should be ignored")
	}
}

func TestPersistFailureIsReported(t *testing.T) {
	t.Parallel()

	st := newRecordingStore()
	st.setErr = errors.New("read-only fs")
	var ec errCollector
	m := New(Options{DefaultThemeID: "a", Loader: abc, Store: st, Reporter: ec.Report})
	_ = m.LoadCatalog(context.Background())

	var notified bool
	m.Subscribe(func(Event) { notified = true })

	if !m.Select("b") {
		t.Fatal("Select(b) = false; persistence failure must not block selection")
	}
	if m.ActiveID() != "b" || !notified {
		t.Errorf("ActiveID() = %q, notified %v", m.ActiveID(), notified)
	}
	if errs := ec.All(); len(errs) != 1 || !errors.Is(errs[0], ErrPersist) {
		t.Errorf("reported %v; want one ErrPersist", errs)
	}
}

func TestLoadCatalogAsync_LastCompletionWins(t *testing.T) {
	t.Parallel()

	slowGo := make(chan struct{})
	var calls int
	var mu sync.Mutex
	loader := catalog.LoaderFunc(func(ctx context.Context) ([]theme.Theme, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-slowGo
			return []theme.Theme{{ID: "slow"}}, nil
		}
		return []theme.Theme{{ID: "fast"}}, nil
	})
	m := New(Options{Loader: loader})

	slow := m.LoadCatalogAsync(context.Background())
	// Wait until the first call is parked before starting the second.
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n == 1 {
			break
		}
	}
	if err := <-m.LoadCatalogAsync(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := m.Catalog().IDs(); !reflect.DeepEqual(got, []string{"fast"}) {
		t.Fatalf("after fast load: %v", got)
	}

	close(slowGo)
	if err := <-slow; err != nil {
		t.Fatal(err)
	}
	if _, open := <-slow; open {
		t.Error("result channel should be closed after one value")
	}
	if got := m.Catalog().IDs(); !reflect.DeepEqual(got, []string{"slow"}) {
		t.Errorf("after slow load: %v; want [slow]", got)
	}
}

func TestConcurrentMutations(t *testing.T) {
	t.Parallel()

	m, st := newLoaded(t, "a")
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 3 {
			case 0:
				m.Next()
			case 1:
				m.Previous()
			default:
				m.Select("b")
			}
			_ = m.IsDarkMode()
		}()
	}
	wg.Wait()

	if got := len(st.Writes()); got != 50 {
		t.Errorf("writes = %d; want 50", got)
	}
	last := st.Writes()[49]
	if m.ActiveID() != last {
		t.Errorf("ActiveID() = %q; last write %q", m.ActiveID(), last)
	}
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	tests := map[EventKind]string{
		EventSelected:      "selected",
		EventCatalogLoaded: "catalog_loaded",
		EventKind(0):       "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q; want %q", int(k), got, want)
		}
	}
}
