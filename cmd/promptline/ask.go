// ABOUTME: "ask" subcommand: reads one validated value of a given kind and prints it to stdout
// ABOUTME: Kinds map onto the readline content constructors; flags add defaults, stops, and options

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/promptline/pkg/tui/readline"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

// askKinds lists the accepted kinds in help order.
var askKinds = []string{"string", "int", "double", "bool", "path", "existing", "file", "options", "choice"}

type askFlags struct {
	prompt  string
	def     string
	hasDef  bool
	stop    string
	options []string
	fuzzy   bool
}

func newAskCmd(a *app) *cobra.Command {
	var f askFlags
	cmd := &cobra.Command{
		Use:       "ask <kind>",
		Short:     "Read one value (" + strings.Join(askKinds, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: askKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasDef = cmd.Flags().Changed("default")
			return a.ask(cmd.Context(), cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "Prompt printed before the input")
	cmd.Flags().StringVarP(&f.def, "default", "d", "", "Value used when the input is left empty")
	cmd.Flags().StringVar(&f.stop, "stop", "", "Regular expression that submits the line as soon as it matches")
	cmd.Flags().StringSliceVarP(&f.options, "options", "o", nil, "Options for the options and choice kinds")
	cmd.Flags().BoolVar(&f.fuzzy, "fuzzy", false, "Complete options by fuzzy match when no prefix matches")
	return cmd
}

func (a *app) ask(ctx context.Context, w io.Writer, kind string, f askFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch kind {
	case "string":
		return askFor(ctx, a, w, readline.String(), f)
	case "int":
		return askFor(ctx, a, w, readline.Int(), f)
	case "double":
		return askFor(ctx, a, w, readline.Double(), f)
	case "bool":
		return askFor(ctx, a, w, readline.Bool(), f)
	case "path":
		return askFor(ctx, a, w, readline.FilePath(), f)
	case "existing":
		return askFor(ctx, a, w, readline.ExistingPath(), f)
	case "file":
		return askFor(ctx, a, w, readline.TextFile(), f)
	case "options", "choice":
		if len(f.options) == 0 {
			return fmt.Errorf("ask %s: --options is required", kind)
		}
		if kind == "choice" {
			return askFor(ctx, a, w, readline.Options(f.options...), f)
		}
		return askFor(ctx, a, w, readline.UnboundedOptions(f.options...), f)
	}
	return fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(askKinds, ", "))
}

// askFor applies the flags to c, reads a value, and prints its formatted
// form followed by a newline.
func askFor[T any](ctx context.Context, a *app, w io.Writer, c readline.Content[T], f askFlags) error {
	if f.hasDef {
		v, err := c.Transform(f.def)
		if err != nil {
			return fmt.Errorf("--default: %w", err)
		}
		c = c.WithDefault(v)
	}
	if f.stop != "" {
		re, err := readline.CompileStopSequence(f.stop)
		if err != nil {
			return fmt.Errorf("--stop: %w", err)
		}
		c = c.WithStopRegexp(re)
	}
	if f.fuzzy {
		c = c.WithFuzzyCompletion()
	}

	v, err := readline.ReadContext[T](ctx, a.engine, c, a.prompt(f.prompt))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, c.Format(v))
	return err
}

// prompt styles s with the palette's prompt role, separated from the
// input by one space.
func (a *app) prompt(s string) style.Text {
	if s == "" {
		return style.Text{}
	}
	if !strings.HasSuffix(s, " ") {
		s += " "
	}
	return style.Styled(s, a.palette.Prompt)
}
