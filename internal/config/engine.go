// ABOUTME: Converts settings into a renderer, a palette, and read engine options
// ABOUTME: Color detection uses termenv so NO_COLOR and non-tty outputs get plain text

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"github.com/mauromedda/promptline/pkg/tui/readline"
	"github.com/mauromedda/promptline/pkg/tui/style"
	"github.com/mauromedda/promptline/pkg/tui/theme"
	"github.com/mauromedda/promptline/pkg/tui/width"
)

// Renderer decides between styled and plain output for w.
func (s *Settings) Renderer(w io.Writer) style.Renderer {
	switch s.Color {
	case "always":
		return style.Renderer{}
	case "never":
		return style.Renderer{Plain: true}
	}
	profile := termenv.NewOutput(w).EnvColorProfile()
	return style.Renderer{Plain: profile == termenv.Ascii}
}

// ResolveTheme returns the configured theme. "auto" picks dark or light
// from the terminal background; a bare name that is not built in is
// looked up in ThemesDir.
func (s *Settings) ResolveTheme(w io.Writer) (*theme.Theme, error) {
	name := s.Theme
	if name == "auto" {
		name = "light"
		if termenv.NewOutput(w).HasDarkBackground() {
			name = "dark"
		}
	}
	if name != "" && theme.Builtin(name) == nil && !strings.ContainsRune(name, filepath.Separator) {
		candidate := filepath.Join(ThemesDir(), name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			name = candidate
		}
	}
	th, err := theme.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", s.Theme, err)
	}
	return th, nil
}

// Palette returns the theme palette with error_color and ghost_style
// applied on top.
func (s *Settings) Palette(w io.Writer) (theme.Palette, error) {
	th, err := s.ResolveTheme(w)
	if err != nil {
		return theme.Palette{}, err
	}
	p := th.Palette
	if s.ErrorColor != "" {
		if p.Error, err = style.ParseModifier(s.ErrorColor); err != nil {
			return theme.Palette{}, fmt.Errorf("error_color: %w", err)
		}
	}
	if s.GhostStyle != "" {
		if p.Ghost, err = style.ParseModifier(s.GhostStyle); err != nil {
			return theme.Palette{}, fmt.Errorf("ghost_style: %w", err)
		}
	}
	return p, nil
}

// EngineOptions converts the settings into read engine options for a
// terminal writing to w.
func (s *Settings) EngineOptions(w io.Writer) ([]readline.Option, error) {
	fn, err := width.ByName(s.WidthMode)
	if err != nil {
		return nil, fmt.Errorf("width_mode: %w", err)
	}
	palette, err := s.Palette(w)
	if err != nil {
		return nil, err
	}

	opts := []readline.Option{
		readline.WithWidth(fn),
		readline.WithRenderer(s.Renderer(w)),
		readline.WithPalette(palette),
		readline.WithRetryMessage(s.RetryMessage),
		readline.WithMaxEOF(s.MaxEOF),
	}
	if s.Bell != nil {
		opts = append(opts, readline.WithBell(*s.Bell))
	}
	if s.FuzzyOptions != nil {
		opts = append(opts, readline.WithFuzzyOptions(*s.FuzzyOptions))
	}
	return opts, nil
}
