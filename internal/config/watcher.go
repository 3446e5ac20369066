// ABOUTME: Polling-based watcher that reloads a theme catalog when its source changes
// ABOUTME: Tracks file mtimes; directory sources are re-listed on every poll

package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Watcher monitors catalog files for changes by polling mtime.
type Watcher struct {
	targets  func() []string
	onChange func()
	interval time.Duration
	mtimes   map[string]time.Time
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher over a fixed set of paths.
func NewWatcher(paths []string, onChange func()) *Watcher {
	fixed := append([]string(nil), paths...)
	return newWatcher(func() []string { return fixed }, onChange)
}

// NewSourceWatcher watches a catalog source. A directory source is
// re-listed on each poll so added and removed files count as changes.
func NewSourceWatcher(source string, onChange func()) *Watcher {
	return newWatcher(func() []string { return SourceFiles(source) }, onChange)
}

func newWatcher(targets func() []string, onChange func()) *Watcher {
	return &Watcher{
		targets:  targets,
		onChange: onChange,
		interval: 2 * time.Second,
		mtimes:   make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}
}

// SourceFiles expands a catalog source into the files to watch.
// URLs and the built-in catalog have nothing to watch.
func SourceFiles(source string) []string {
	if source == "" || source == "builtin" || strings.Contains(source, "://") {
		return nil
	}
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return []string{source}
	}
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(source, e.Name()))
		}
	}
	sort.Strings(files)
	return files
}

// SetInterval overrides the default polling interval (2s).
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Start begins polling in a goroutine. Safe to call multiple times; subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mtimes = w.scan()
	w.mu.Unlock()

	go w.loop()
}

// Stop halts the polling goroutine. Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// Check compares the source against the last snapshot, calling onChange
// synchronously when it differs. It reports whether a change was seen.
func (w *Watcher) Check() bool {
	if !w.poll() {
		return false
	}
	w.onChange()
	return true
}

func (w *Watcher) loop() {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// poll rescans and swaps in the new snapshot when anything differs.
func (w *Watcher) poll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	current := w.scan()
	changed := len(current) != len(w.mtimes)
	if !changed {
		for path, mt := range current {
			if prev, ok := w.mtimes[path]; !ok || !prev.Equal(mt) {
				changed = true
				break
			}
		}
	}
	if changed {
		w.mtimes = current
	}
	return changed
}

// scan stats every target; missing files are left out.
func (w *Watcher) scan() map[string]time.Time {
	out := make(map[string]time.Time)
	for _, path := range w.targets() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		out[path] = info.ModTime()
	}
	return out
}
