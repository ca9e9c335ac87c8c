// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files under ~/.promptline and ./.promptline, then ${VAR} expansion and env overrides

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration. Pointer fields distinguish
// "unset" from an explicit false so a project file can turn a global
// setting off.
type Settings struct {
	Theme        string `yaml:"theme,omitempty"`
	ErrorColor   string `yaml:"error_color,omitempty"`
	GhostStyle   string `yaml:"ghost_style,omitempty"`
	Bell         *bool  `yaml:"bell,omitempty"`
	WidthMode    string `yaml:"width_mode,omitempty"`
	Color        string `yaml:"color,omitempty"`
	RetryMessage string `yaml:"retry_message,omitempty"`
	FuzzyOptions *bool  `yaml:"fuzzy_options,omitempty"`
	MaxEOF       int    `yaml:"max_eof,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Load reads and merges global and project-local settings, then applies
// ${VAR} expansion and PROMPTLINE_* environment overrides. Project
// settings override global settings. Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return finish(merge(global, project))
}

// LoadFile reads a single settings file, as given with --config, and
// applies the same expansion and overrides as Load.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return finish(s)
}

func finish(s *Settings) (*Settings, error) {
	ResolveEnvVars(s)
	if err := ApplyEnv(s, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings. Set project
// values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	overlay(&result.Theme, project.Theme)
	overlay(&result.ErrorColor, project.ErrorColor)
	overlay(&result.GhostStyle, project.GhostStyle)
	overlay(&result.WidthMode, project.WidthMode)
	overlay(&result.Color, project.Color)
	overlay(&result.RetryMessage, project.RetryMessage)
	overlay(&result.LogLevel, project.LogLevel)
	if project.Bell != nil {
		result.Bell = project.Bell
	}
	if project.FuzzyOptions != nil {
		result.FuzzyOptions = project.FuzzyOptions
	}
	if project.MaxEOF != 0 {
		result.MaxEOF = project.MaxEOF
	}
	return &result
}

func overlay(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate rejects values no component can use.
func (s *Settings) Validate() error {
	switch s.WidthMode {
	case "", "heuristic", "unicode":
	default:
		return fmt.Errorf("width_mode %q: want heuristic or unicode", s.WidthMode)
	}
	switch s.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color %q: want auto, always, or never", s.Color)
	}
	if s.MaxEOF < 0 {
		return fmt.Errorf("max_eof %d: must not be negative", s.MaxEOF)
	}
	return nil
}
