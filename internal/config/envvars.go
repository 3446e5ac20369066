// ABOUTME: Environment handling for settings: ${VAR} expansion and THEMESWITCH_* overrides
// ABOUTME: Expansion replaces unset vars with empty; overrides only apply when set and non-empty

package config

import (
	"os"
	"regexp"
	"strings"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDefaultTheme = "THEMESWITCH_DEFAULT_THEME"
	EnvStorageKey   = "THEMESWITCH_STORAGE_KEY"
	EnvCatalog      = "THEMESWITCH_CATALOG"
	EnvStore        = "THEMESWITCH_STORE"
	EnvLogLevel     = "THEMESWITCH_LOG_LEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.DefaultTheme = expandEnv(s.DefaultTheme)
	s.StorageKey = expandEnv(s.StorageKey)
	s.Catalog = expandEnv(s.Catalog)
	s.LogLevel = expandEnv(s.LogLevel)
	s.Listen = expandEnv(s.Listen)
	s.Store.Path = expandEnv(s.Store.Path)
	s.Store.NATSURL = expandEnv(s.Store.NATSURL)
	s.Store.Bucket = expandEnv(s.Store.Bucket)
}

// ApplyEnv overrides settings from THEMESWITCH_* variables.
//
// THEMESWITCH_STORE takes a backend name, a nats:// URL (selecting the NATS
// backend), or a file path (selecting the file backend).
func ApplyEnv(s *Settings) {
	if v := lookup(EnvDefaultTheme); v != "" {
		s.DefaultTheme = v
	}
	if v := lookup(EnvStorageKey); v != "" {
		s.StorageKey = v
	}
	if v := lookup(EnvCatalog); v != "" {
		s.Catalog = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := lookup(EnvStore); v != "" {
		applyStoreValue(&s.Store, v)
	}
}

func applyStoreValue(st *StoreSettings, v string) {
	switch {
	case v == BackendFile || v == BackendMemory || v == BackendNATS:
		st.Backend = v
	case strings.HasPrefix(v, "nats://"), strings.HasPrefix(v, "tls://"):
		st.Backend = BackendNATS
		st.NATSURL = v
	default:
		st.Backend = BackendFile
		st.Path = v
	}
}

func lookup(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// SetStore applies a THEMESWITCH_STORE style value to s and fills the
// defaults for the backend it selects.
func SetStore(s *Settings, v string) {
	applyStoreValue(&s.Store, v)
	applyDefaults(s)
}
