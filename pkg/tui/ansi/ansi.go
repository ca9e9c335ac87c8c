// ABOUTME: Builders for the CSI sequences the line editor emits
// ABOUTME: Cursor movement, insert/delete characters, erase, absolute positioning, and bell

package ansi

import "strconv"

// Fixed sequences.
const (
	CSI = "\x1b["

	// Bell rings the terminal bell.
	Bell = "\a"
	// InsertChar opens one blank cell at the cursor, shifting the rest right.
	InsertChar = CSI + "@"
	// EraseLineRight erases from the cursor to the end of the line.
	EraseLineRight = CSI + "0K"
	// EraseScreenDown erases from the cursor to the end of the screen.
	EraseScreenDown = CSI + "0J"
	// QueryCursor requests a cursor position report.
	QueryCursor = CSI + "6n"
)

func csi(n int, final byte) string {
	return CSI + strconv.Itoa(n) + string(final)
}

// CursorForward moves the cursor n columns right.
func CursorForward(n int) string { return csi(n, 'C') }

// CursorBack moves the cursor n columns left.
func CursorBack(n int) string { return csi(n, 'D') }

// CursorUp moves the cursor n lines up.
func CursorUp(n int) string { return csi(n, 'A') }

// CursorDown moves the cursor n lines down.
func CursorDown(n int) string { return csi(n, 'B') }

// NextLine moves to column one, n lines down.
func NextLine(n int) string { return csi(n, 'E') }

// PrevLine moves to column one, n lines up.
func PrevLine(n int) string { return csi(n, 'F') }

// Column moves to column n of the current line.
func Column(n int) string { return csi(n, 'G') }

// DeleteChars removes n cells at the cursor, shifting the rest left.
func DeleteChars(n int) string { return csi(n, 'P') }

// MoveTo positions the cursor at a 1-based row and column.
func MoveTo(row, col int) string {
	return CSI + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "f"
}

// Horizontal moves right for positive n, left for negative n, and returns
// "" for zero.
func Horizontal(n int) string {
	switch {
	case n > 0:
		return CursorForward(n)
	case n < 0:
		return CursorBack(-n)
	}
	return ""
}
