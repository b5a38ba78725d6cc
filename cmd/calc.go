package main

import (
	"debroglie/pkg/domain"
	"debroglie/pkg/serrors"
	"fmt"

	"github.com/spf13/cobra"
)

// calcCommand constructs the 'calc' subcommand that runs a full calculation
// for one particle given either its mass or a particle preset.
func calcCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Computes wavelength, photon energy, molar energy and spectrum band of a particle",
		Example: `  debroglie calc --mass 9.10938e-31 --velocity 4e6
  debroglie calc --particle electron --velocity 4e6 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mass, _ := cmd.Flags().GetFloat64("mass")
			velocity, _ := cmd.Flags().GetFloat64("velocity")
			particle, _ := cmd.Flags().GetString("particle")

			if cmd.Flags().Changed("mass") == (particle != "") {
				return serrors.With(serrors.ErrBadRequest, "exactly one of --mass or --particle is required")
			}

			out, err := renderer(cmd)
			if err != nil {
				return err
			}

			calc, err := a.newCalculator(ctx, nil)
			if err != nil {
				return err
			}

			res, err := calc.Calculate(ctx, domain.Particle{Name: particle, Mass: mass, Velocity: velocity})
			if err != nil {
				return fmt.Errorf("could not calculate: %w", err)
			}

			return out.Result(cmd.OutOrStdout(), *res) //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("mass", 0, "Particle mass in kilograms")
	cmd.Flags().Float64("velocity", 0, "Particle velocity in meters per second")
	cmd.Flags().String("particle", "", "Particle preset (alpha, electron, neutron, proton)")
	_ = cmd.MarkFlagRequired("velocity")
	addOutputFlags(cmd)

	return cmd
}
