// ABOUTME: Panic recovery that leaves the terminal in cooked mode with attributes reset
// ABOUTME: RestoreOnPanic resets attributes, exits raw mode, reports the panic, then exits

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// resetSequence clears any SGR attributes left by a half-written styled run.
const resetSequence = "\x1b[0m"

// RestoreOnPanic should be deferred at the top of main (or any goroutine
// that owns the terminal). On panic it resets text attributes, exits raw
// mode via t, prints the panic value and stack trace, then exits with
// code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restoreTerminal(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// restoreTerminal is best-effort.
func restoreTerminal(t Terminal) {
	_, _ = t.Write([]byte(resetSequence))
	_ = t.ExitRawMode()
}
