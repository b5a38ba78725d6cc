// Package calculator runs the full pipeline for one particle measurement:
// wavelength, photon frequency and energy, molar energy and spectrum
// classification. It is the glue between the pure physics and spectrum
// packages and the presentation layers (CLI and HTTP API).
package calculator

import (
	"context"
	"debroglie/pkg/domain"
	"debroglie/pkg/logger"
	"debroglie/pkg/physics"
	"debroglie/pkg/serrors"
	"debroglie/pkg/spectrum"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "debroglie/internal/calculator"

// Options configure a Calculator.
type Options struct {
	// Constants used by every calculation; physics.Default when zero.
	Constants physics.Constants
	// Table is the loaded band table. It is required.
	Table *spectrum.Table
	// MeterProvider records calculation counters; the global provider when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider traces calculations; the global provider when nil.
	TracerProvider trace.TracerProvider
}

type calculator struct {
	constants    physics.Constants
	table        *spectrum.Table
	tracer       trace.Tracer
	calculations metric.Int64Counter
}

// New validates opts and returns a Calculator. A missing band table is a
// data load error: classification never runs against an absent table.
func New(opts Options) (Calculator, error) {
	if opts.Table == nil {
		return nil, serrors.With(serrors.ErrDataLoad, "band table is not loaded")
	}
	if opts.Constants == (physics.Constants{}) {
		opts.Constants = physics.Default
	}
	if err := opts.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("invalid constants: %w", err)
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	calculations, err := opts.MeterProvider.Meter(instrumentationName).Int64Counter(
		"debroglie.calculations",
		metric.WithDescription("Number of particle calculations by outcome."),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create calculations counter: %w", err)
	}

	return &calculator{
		constants:    opts.Constants,
		table:        opts.Table,
		tracer:       opts.TracerProvider.Tracer(instrumentationName),
		calculations: calculations,
	}, nil
}

// resolveMass fills the mass from the particle preset. A preset name and an
// explicit mass are mutually exclusive.
func resolveMass(p domain.Particle) (domain.Particle, error) {
	if p.Name == "" {
		return p, nil
	}
	if p.Mass != 0 {
		return p, serrors.With(serrors.ErrBadRequest,
			"particle %q and an explicit mass are mutually exclusive", p.Name)
	}

	mass, err := physics.Preset(p.Name)
	if err != nil {
		return p, err
	}
	p.Mass = mass

	return p, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case serrors.KindOf(err) != nil:
		return serrors.KindOf(err).Error()
	default:
		return serrors.ErrInternal.Error()
	}
}

// Calculate implements Calculator.
func (c *calculator) Calculate(ctx context.Context, particle domain.Particle) (res *domain.Result, err error) {
	ctx, span := c.tracer.Start(ctx, "calculator.Calculate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		classified := res != nil && res.Classified()
		c.calculations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", outcome(err)),
			attribute.Bool("classified", classified),
		))
	}()

	particle, err = resolveMass(particle)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("particle.name", particle.Name),
		attribute.Float64("particle.mass", particle.Mass),
		attribute.Float64("particle.velocity", particle.Velocity),
	)

	wavelength, err := c.constants.Wavelength(particle.Mass, particle.Velocity)
	if err != nil {
		return nil, fmt.Errorf("could not compute wavelength: %w", err)
	}
	frequency, err := c.constants.Frequency(wavelength)
	if err != nil {
		return nil, fmt.Errorf("could not compute frequency: %w", err)
	}
	energy, err := c.constants.PhotonEnergy(wavelength)
	if err != nil {
		return nil, fmt.Errorf("could not compute photon energy: %w", err)
	}
	molar, err := c.constants.MolarPhotonEnergy(wavelength)
	if err != nil {
		return nil, fmt.Errorf("could not compute molar photon energy: %w", err)
	}
	bands, err := c.table.Classify(wavelength)
	if err != nil {
		return nil, fmt.Errorf("could not classify wavelength: %w", err)
	}

	res = &domain.Result{
		Particle:          particle,
		Wavelength:        wavelength,
		Frequency:         frequency,
		PhotonEnergy:      energy,
		PhotonEnergyEV:    physics.ToElectronvolts(energy),
		MolarPhotonEnergy: molar,
		Bands:             bands,
	}

	logger.Debug(ctx, "calculation done",
		zap.Float64("mass", particle.Mass),
		zap.Float64("velocity", particle.Velocity),
		zap.Float64("wavelength", wavelength),
		zap.Strings("bands", spectrum.Names(bands)),
	)
	if !res.Classified() {
		logger.Info(ctx, "wavelength matched no spectral band", zap.Float64("wavelength", wavelength))
	}

	return res, nil
}

// Classify implements Calculator.
func (c *calculator) Classify(ctx context.Context, wavelength float64) ([]domain.Band, error) {
	_, span := c.tracer.Start(ctx, "calculator.Classify",
		trace.WithAttributes(attribute.Float64("wavelength", wavelength)))
	defer span.End()

	bands, err := c.table.Classify(wavelength)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not classify wavelength: %w", err)
	}

	return bands, nil
}

// Bands implements Calculator.
func (c *calculator) Bands(_ context.Context) []domain.Band {
	return c.table.Bands()
}
