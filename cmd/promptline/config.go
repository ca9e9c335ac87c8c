// ABOUTME: "config" subcommand prints the effective settings after merge and env overrides

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/promptline/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.Explain(a.settings))
			return err
		},
	}
}
