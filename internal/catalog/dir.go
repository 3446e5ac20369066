// ABOUTME: DirLoader merges every catalog file in a directory
// ABOUTME: Files load concurrently; the result is concatenated in file-name order

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// DirLoader loads all JSON, YAML and TOML files directly under Dir.
// Subdirectories and other extensions are ignored. Any file failing to load
// fails the whole fetch.
type DirLoader struct {
	Dir string
}

// NewDirLoader returns a DirLoader for dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// FetchThemes loads every catalog file in parallel.
func (l *DirLoader) FetchThemes(ctx context.Context) ([]theme.Theme, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(l.Dir, e.Name()))
	}
	sort.Strings(files)

	parts := make([][]theme.Theme, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range files {
		g.Go(func() error {
			themes, err := NewFileLoader(path).FetchThemes(gctx)
			if err != nil {
				return err
			}
			parts[i] = themes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []theme.Theme
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// Open picks a Loader for source: an http(s) URL, a directory, a catalog
// file, or the built-in catalog when source is empty or "builtin".
func Open(source string) (Loader, error) {
	switch {
	case source == "" || source == "builtin":
		return Builtin(), nil
	case isURL(source):
		return NewHTTPLoader(source), nil
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	if info.IsDir() {
		return NewDirLoader(source), nil
	}
	if !Supported(source) {
		return nil, fmt.Errorf("catalog source %s: unsupported extension", source)
	}
	return NewFileLoader(source), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
