package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// classifyCommand constructs the 'classify' subcommand that maps a wavelength
// to the spectrum bands containing it.
func classifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classifies a wavelength against the spectrum band table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wavelength, _ := cmd.Flags().GetFloat64("wavelength")

			out, err := renderer(cmd)
			if err != nil {
				return err
			}

			calc, err := a.newCalculator(ctx, nil)
			if err != nil {
				return err
			}

			bands, err := calc.Classify(ctx, wavelength)
			if err != nil {
				return fmt.Errorf("could not classify: %w", err)
			}

			return out.Bands(cmd.OutOrStdout(), bands) //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("wavelength", 0, "Wavelength in meters")
	_ = cmd.MarkFlagRequired("wavelength")
	addOutputFlags(cmd)

	return cmd
}
