// ABOUTME: FileLoader reads a catalog from disk as JSON, YAML, or TOML
// ABOUTME: Format is chosen by file extension

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// FileLoader loads a catalog from a single file.
//
// JSON files hold a top-level array. YAML files hold either a top-level
// sequence or a "themes" key. TOML files use [[themes]] tables.
type FileLoader struct {
	Path string
}

// NewFileLoader returns a FileLoader for path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Supported reports whether path has a catalog file extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

type themeList struct {
	Themes []theme.Theme `yaml:"themes" toml:"themes"`
}

// FetchThemes reads and decodes l.Path.
func (l *FileLoader) FetchThemes(ctx context.Context) ([]theme.Theme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	themes, err := decodeFile(l.Path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return themes, nil
}

func decodeFile(path string, data []byte) ([]theme.Theme, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return theme.DecodeCatalog(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		var list themeList
		if _, err := toml.Decode(string(data), &list); err != nil {
			return nil, fmt.Errorf("decoding TOML catalog: %w", err)
		}
		return list.Themes, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

func decodeYAML(data []byte) ([]theme.Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding YAML catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var themes []theme.Theme
		if err := root.Decode(&themes); err != nil {
			return nil, fmt.Errorf("decoding YAML catalog: %w", err)
		}
		return themes, nil
	}
	var list themeList
	if err := root.Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding YAML catalog: %w", err)
	}
	return list.Themes, nil
}
