// ABOUTME: Standard filesystem paths for pi-table configuration
// ABOUTME: Resolves ~/.pi-table/ for global and .pi-table/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-table"
	projectDirName = ".pi-table"
)

// GlobalDir returns the user-global config directory (~/.pi-table/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-table/ under
// the given root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalSettingsFile returns the path of the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectSettingsFile returns the path of the project-local settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// ThemesDir returns the directory searched for named theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// LogFile returns the path used for verbose-mode logging.
func LogFile() string {
	return filepath.Join(GlobalDir(), "pi-table.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
