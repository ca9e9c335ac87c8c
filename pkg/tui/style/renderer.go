// ABOUTME: Renderer turns Text into bytes for one output color profile
// ABOUTME: Plain renderers drop every escape so piped output stays clean

package style

// Renderer renders styled text for a particular output.
type Renderer struct {
	// Plain disables all SGR output.
	Plain bool
}

// Render returns the bytes to write for t.
func (r Renderer) Render(t Text) string {
	if r.Plain {
		return t.Raw()
	}
	return t.String()
}

// Modify renders a single string through m.
func (r Renderer) Modify(m Modifier, s string) string {
	if r.Plain {
		return s
	}
	return m.Modify(s)
}
