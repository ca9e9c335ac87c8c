// ABOUTME: CSI arrow key encodings shared by the decoder and Key.Sequence
// ABOUTME: Only the four plain arrows are recognized; everything else becomes Escape

package key

// arrowFinals maps the final byte after ESC [ to an arrow key type.
var arrowFinals = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// arrowSequences maps arrow key types to their CSI encoding.
var arrowSequences = map[KeyType]string{
	KeyUp:    "\x1b[A",
	KeyDown:  "\x1b[B",
	KeyRight: "\x1b[C",
	KeyLeft:  "\x1b[D",
}
