// ABOUTME: Root cobra command: persistent --config/--verbose flags and engine construction
// ABOUTME: Settings load once per invocation in PersistentPreRunE; subcommands share the app

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/promptline/internal/config"
	"github.com/mauromedda/promptline/internal/log"
	"github.com/mauromedda/promptline/pkg/tui/readline"
	"github.com/mauromedda/promptline/pkg/tui/terminal"
	"github.com/mauromedda/promptline/pkg/tui/theme"
)

// app is the state shared by every subcommand.
type app struct {
	term terminal.Terminal
	// color is probed for color support and background brightness.
	color io.Writer
	isTTY bool

	configPath string
	verbose    bool

	settings *config.Settings
	palette  theme.Palette
	engine   *readline.Engine
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "promptline",
		Short:         "Validated line input for shell scripts",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetVersionTemplate("promptline {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (default: ~/.promptline and ./.promptline)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newAskCmd(a),
		newPrintCmd(a),
		newProgressCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads settings and builds the engine.
func (a *app) setup() error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}
	a.settings = settings

	lvl, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = log.LevelDebug
	}
	log.SetLevel(lvl)

	opts, err := settings.EngineOptions(a.color)
	if err != nil {
		return err
	}
	a.palette, err = settings.Palette(a.color)
	if err != nil {
		return err
	}
	// Piped input never recovers from end of input; give up on the first EOF.
	if settings.MaxEOF == 0 && !a.isTTY {
		opts = append(opts, readline.WithMaxEOF(1))
	}
	a.engine = readline.New(a.term, opts...)
	log.Debug("promptline: config=%q tty=%v", a.configPath, a.isTTY)
	return nil
}

func (a *app) loadSettings() (*config.Settings, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return config.Load(cwd)
}
