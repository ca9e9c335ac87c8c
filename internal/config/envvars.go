// ABOUTME: Environment handling for settings: ${VAR} expansion and PROMPTLINE_* overrides
// ABOUTME: Unset ${VAR} references become empty; overrides win over every file

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// EnvPrefix starts every override variable name.
const EnvPrefix = "PROMPTLINE_"

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Theme = expandEnv(s.Theme)
	s.ErrorColor = expandEnv(s.ErrorColor)
	s.GhostStyle = expandEnv(s.GhostStyle)
	s.RetryMessage = expandEnv(s.RetryMessage)
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

// ApplyEnv overrides settings from PROMPTLINE_<FIELD> variables, looked
// up with lookup (os.LookupEnv in production).
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{"THEME", &s.Theme},
		{"ERROR_COLOR", &s.ErrorColor},
		{"GHOST_STYLE", &s.GhostStyle},
		{"WIDTH_MODE", &s.WidthMode},
		{"COLOR", &s.Color},
		{"RETRY_MESSAGE", &s.RetryMessage},
		{"LOG_LEVEL", &s.LogLevel},
	}
	for _, f := range strs {
		if v, ok := lookup(EnvPrefix + f.name); ok {
			*f.dst = v
		}
	}

	bools := []struct {
		name string
		dst  **bool
	}{
		{"BELL", &s.Bell},
		{"FUZZY_OPTIONS", &s.FuzzyOptions},
	}
	for _, f := range bools {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
		}
		*f.dst = &b
	}

	if v, ok := lookup(EnvPrefix + "MAX_EOF"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_EOF: %w", EnvPrefix, err)
		}
		s.MaxEOF = n
	}
	return nil
}
