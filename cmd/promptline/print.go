// ABOUTME: "print" renders markdown through the rich-text bridge; "progress" draws one labelled bar
// ABOUTME: Both write through the engine so they honor the configured color mode

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/promptline/pkg/tui/richtext"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print [markdown...]",
		Short: "Render markdown to the terminal (reads stdin when no argument is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading markdown: %w", err)
				}
				src = string(data)
			}
			text := richtext.ToText(richtext.Markdown(src))
			terminator := ""
			if !strings.HasSuffix(text.Raw(), "\n") {
				terminator = "\n"
			}
			a.engine.Print(text, terminator)
			return nil
		},
	}
}

func newProgressCmd(a *app) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "progress <fraction>",
		Short: "Draw a progress bar filled to a fraction between 0 and 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("fraction %q: %w", args[0], err)
			}
			a.engine.ProgressLabel(f, style.Styled(label, a.palette.Accent))
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "Text printed before the bar")
	return cmd
}
