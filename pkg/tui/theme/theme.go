// ABOUTME: Semantic prompt palette: maps reader roles to style modifiers
// ABOUTME: A Theme is a named Palette; DefaultPalette matches the classic dim/red look

package theme

import "github.com/mauromedda/promptline/pkg/tui/style"

// Palette holds the modifier for every role the read engine draws.
type Palette struct {
	// Prompt styles prompts built by the CLI.
	Prompt style.Modifier
	// Ghost styles the suggested default shown before anything is typed.
	Ghost style.Modifier
	// Error styles the reason printed under a rejected line.
	Error style.Modifier
	// Hint styles secondary text such as option lists.
	Hint style.Modifier
	// Accent highlights selections and progress.
	Accent style.Modifier
	// Code styles inline code in rich text.
	Code style.Modifier
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Prompt: style.Default.Bold(),
		Ghost:  style.Default.Dim(),
		Error:  style.Default.Foreground(style.Red),
		Hint:   style.Default.Foreground(style.BrightBlack),
		Accent: style.Default.Foreground(style.Cyan),
		Code:   style.Default.Foreground(style.Cyan),
	}
}

// roles lists every palette field with its name in theme files.
func (p *Palette) roles() []struct {
	name string
	mod  *style.Modifier
} {
	return []struct {
		name string
		mod  *style.Modifier
	}{
		{"prompt", &p.Prompt},
		{"ghost", &p.Ghost},
		{"error", &p.Error},
		{"hint", &p.Hint},
		{"accent", &p.Accent},
		{"code", &p.Code},
	}
}
