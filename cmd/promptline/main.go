// ABOUTME: CLI entry point for promptline with terminal crash recovery
// ABOUTME: Wires the process terminal into the cobra command tree and maps errors to exit codes

package main

import (
	"fmt"
	"os"

	"github.com/mauromedda/promptline/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	pt := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(pt)

	a := &app{
		term:  pt,
		color: os.Stdout,
		isTTY: pt.IsTerminal(),
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
