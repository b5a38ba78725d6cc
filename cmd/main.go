// Package main provides the CLI entrypoint of the De Broglie calculator.
// It wires subcommands (calc, classify, bands, serve), loads configuration
// and initializes logging before any subcommand runs.
package main

import (
	"context"
	"debroglie/internal/calculator"
	"debroglie/internal/config"
	"debroglie/pkg/logger"
	"debroglie/pkg/render"
	"debroglie/pkg/spectrum"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// app carries the state shared by subcommands once the root command has
// loaded the configuration.
type app struct {
	cfg *config.Config
}

// newCalculator loads the band table and builds a calculator. A table that
// cannot be loaded stops the command before any calculation runs.
func (a *app) newCalculator(ctx context.Context, mp metric.MeterProvider) (calculator.Calculator, error) {
	table, err := spectrum.Open(a.cfg.Spectrum.TablePath)
	if err != nil {
		return nil, fmt.Errorf("could not load band table: %w", err)
	}
	logger.Debug(ctx, "band table loaded",
		zap.String("path", a.cfg.Spectrum.TablePath),
		zap.Int("bands", table.Len()))

	return calculator.New(calculator.Options{ //nolint: wrapcheck
		Constants:     a.cfg.PhysicsConstants(),
		Table:         table,
		MeterProvider: mp,
	})
}

// addOutputFlags registers the --output and --no-color flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", render.FormatText, "Output format (text or json)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// renderer builds the renderer selected by the output flags.
func renderer(cmd *cobra.Command) (render.Renderer, error) {
	format, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return render.New(format, noColor) //nolint: wrapcheck
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "debroglie",
		Short:         "De Broglie wavelength, photon energy and spectrum band calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}
			a.cfg = cfg

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		calcCommand(a),
		classifyCommand(a),
		bandsCommand(a),
		serveCommand(a),
	)

	return rootCmd
}

// main executes the root command and exits non-zero on error.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		log.SetFlags(0)
		log.Println("error:", err)
		os.Exit(1) //nolint: gocritic
	}
}
