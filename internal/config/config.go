// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON files, then ${VAR} expansion, then THEMESWITCH_* env overrides, then defaults

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Store backends understood by Settings.Store.Backend.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendNATS   = "nats"
)

// Defaults applied after merging.
const (
	DefaultTheme      = "dracula"
	DefaultStorageKey = "gothememe-theme"
	DefaultBucket     = "themeswitch"
	DefaultListen     = "127.0.0.1:8787"
)

// Settings holds the merged configuration.
type Settings struct {
	DefaultTheme string        `json:"default_theme,omitempty"`
	StorageKey   string        `json:"storage_key,omitempty"`
	Catalog      string        `json:"catalog,omitempty"`
	Store        StoreSettings `json:"store,omitzero"`
	LogLevel     string        `json:"log_level,omitempty"`
	Listen       string        `json:"listen,omitempty"`
}

// StoreSettings selects and configures the persistence backend.
type StoreSettings struct {
	Backend string `json:"backend,omitempty"`
	Path    string `json:"path,omitempty"`
	NATSURL string `json:"nats_url,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
}

// Load reads and merges global and project-local settings, expands ${VAR}
// references, applies environment overrides and fills defaults.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return loadPaths(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

func loadPaths(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	s := merge(global, project)
	ResolveEnvVars(s)
	ApplyEnv(s)
	applyDefaults(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-empty project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	override(&result.DefaultTheme, project.DefaultTheme)
	override(&result.StorageKey, project.StorageKey)
	override(&result.Catalog, project.Catalog)
	override(&result.LogLevel, project.LogLevel)
	override(&result.Listen, project.Listen)
	override(&result.Store.Backend, project.Store.Backend)
	override(&result.Store.Path, project.Store.Path)
	override(&result.Store.NATSURL, project.Store.NATSURL)
	override(&result.Store.Bucket, project.Store.Bucket)
	return &result
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func applyDefaults(s *Settings) {
	if s.DefaultTheme == "" {
		s.DefaultTheme = DefaultTheme
	}
	if s.StorageKey == "" {
		s.StorageKey = DefaultStorageKey
	}
	if s.Listen == "" {
		s.Listen = DefaultListen
	}
	if s.Store.Backend == "" {
		s.Store.Backend = BackendFile
	}
	switch s.Store.Backend {
	case BackendFile:
		if s.Store.Path == "" {
			s.Store.Path = StateFile()
		}
	case BackendNATS:
		if s.Store.NATSURL == "" {
			s.Store.NATSURL = "nats://127.0.0.1:4222"
		}
		if s.Store.Bucket == "" {
			s.Store.Bucket = DefaultBucket
		}
	}
}

// Validate rejects settings the CLI cannot act on.
func (s *Settings) Validate() error {
	switch s.Store.Backend {
	case BackendFile, BackendMemory, BackendNATS:
	default:
		return fmt.Errorf("unknown store backend %q (want file, memory or nats)", s.Store.Backend)
	}
	if strings.TrimSpace(s.StorageKey) == "" {
		return fmt.Errorf("storage_key must not be blank")
	}
	return nil
}
