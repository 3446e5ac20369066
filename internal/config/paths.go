// ABOUTME: Standard filesystem paths for themeswitch configuration and state
// ABOUTME: Resolves ~/.themeswitch/ for global and .themeswitch/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".themeswitch"
	projectDirName = ".themeswitch"
)

// GlobalDir returns the user-global config directory (~/.themeswitch/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.themeswitch/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// StateFile returns the default file store location.
func StateFile() string {
	return filepath.Join(GlobalDir(), "state.json")
}

// ThemesDir returns the user catalog directory, used when it exists and no
// catalog source is configured.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}
