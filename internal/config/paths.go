// ABOUTME: Standard filesystem paths for promptline configuration
// ABOUTME: Resolves ~/.promptline/ for global and .promptline/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName    = ".promptline"
	configName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.promptline/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configName)
}

// ThemesDir returns where theme files named in settings are looked up.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}
