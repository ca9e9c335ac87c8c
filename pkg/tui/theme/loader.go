// ABOUTME: YAML theme file loading; each role is a modifier description like "bold red"
// ABOUTME: Unset roles inherit from DefaultPalette so a loaded palette is always complete

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/promptline/pkg/tui/style"
)

// fileTheme is the on-disk form. JSON files parse too since JSON is YAML.
type fileTheme struct {
	Name    string            `yaml:"name"`
	Palette map[string]string `yaml:"palette"`
}

// LoadFile reads a theme file and returns a Theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a theme document. Missing roles fall back to
// DefaultPalette; unknown roles are an error.
func Parse(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p := DefaultPalette()
	if err := p.apply(ft.Palette); err != nil {
		return nil, err
	}
	return &Theme{Name: ft.Name, Palette: p}, nil
}

// Resolve returns the built-in theme called name, or loads name as a file
// path when no built-in matches. An empty name is the default theme.
func Resolve(name string) (*Theme, error) {
	if name == "" {
		name = "default"
	}
	if th := Builtin(name); th != nil {
		return th, nil
	}
	return LoadFile(name)
}

func (p *Palette) apply(specs map[string]string) error {
	known := make(map[string]bool, len(specs))
	for _, r := range p.roles() {
		spec, ok := specs[r.name]
		if !ok {
			continue
		}
		known[r.name] = true
		m, err := style.ParseModifier(spec)
		if err != nil {
			return fmt.Errorf("theme role %q: %w", r.name, err)
		}
		*r.mod = m
	}
	for name := range specs {
		if !known[name] {
			return fmt.Errorf("theme role %q: unknown role", name)
		}
	}
	return nil
}
