// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings

package config

import (
	"fmt"
	"strings"
)

// Explain renders the effective settings, showing defaults for unset
// values.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder
	b.WriteString("=== Display ===\n")
	fmt.Fprintf(&b, "  Theme:        %s\n", orDefault(s.Theme, "default"))
	fmt.Fprintf(&b, "  ErrorColor:   %s\n", orDefault(s.ErrorColor, "(theme)"))
	fmt.Fprintf(&b, "  GhostStyle:   %s\n", orDefault(s.GhostStyle, "(theme)"))
	fmt.Fprintf(&b, "  Color:        %s\n", orDefault(s.Color, "auto"))
	fmt.Fprintf(&b, "  WidthMode:    %s\n", orDefault(s.WidthMode, "heuristic"))
	b.WriteString("\n")

	b.WriteString("=== Input ===\n")
	fmt.Fprintf(&b, "  Bell:         %v\n", boolOr(s.Bell, true))
	fmt.Fprintf(&b, "  FuzzyOptions: %v\n", boolOr(s.FuzzyOptions, false))
	fmt.Fprintf(&b, "  RetryMessage: %s\n", orDefault(s.RetryMessage, "(built-in)"))
	if s.MaxEOF > 0 {
		fmt.Fprintf(&b, "  MaxEOF:       %d\n", s.MaxEOF)
	} else {
		b.WriteString("  MaxEOF:       unlimited\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	fmt.Fprintf(&b, "  LogLevel:     %s\n", orDefault(s.LogLevel, "warn"))
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
