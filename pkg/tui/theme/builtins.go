// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "github.com/mauromedda/promptline/pkg/tui/style"

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Prompt: style.Default.Bold().Foreground(style.BrightWhite),
			Ghost:  style.Default.Foreground(style.Indexed(242)),
			Error:  style.Default.Foreground(style.Indexed(203)),
			Hint:   style.Default.Foreground(style.Indexed(245)),
			Accent: style.Default.Foreground(style.Indexed(117)),
			Code:   style.Default.Foreground(style.Indexed(221)),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Prompt: style.Default.Bold().Foreground(style.Black),
			Ghost:  style.Default.Foreground(style.Indexed(249)),
			Error:  style.Default.Foreground(style.Indexed(160)),
			Hint:   style.Default.Foreground(style.Indexed(244)),
			Accent: style.Default.Foreground(style.Indexed(25)),
			Code:   style.Default.Foreground(style.Indexed(130)),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Prompt: style.Default.Bold(),
			Ghost:  style.Default.Dim(),
			Error:  style.Default.Bold().Underline(),
			Hint:   style.Default.Dim(),
			Accent: style.Default.Inverse(),
			Code:   style.Default.Italic(),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
