package main

import (
	"github.com/spf13/cobra"
)

// bandsCommand constructs the 'bands' subcommand that prints the loaded band table.
func bandsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Lists the spectrum band table in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := renderer(cmd)
			if err != nil {
				return err
			}

			calc, err := a.newCalculator(ctx, nil)
			if err != nil {
				return err
			}

			return out.Bands(cmd.OutOrStdout(), calc.Bands(ctx)) //nolint: wrapcheck
		},
	}
	addOutputFlags(cmd)

	return cmd
}
