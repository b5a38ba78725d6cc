package calculator

import (
	"context"
	"debroglie/pkg/domain"
)

//go:generate mockgen -package mockcalculator -source=interface.go -destination=mock/mockcalculator.go *
type Calculator interface {
	// Calculate derives every quantity for one particle measurement.
	Calculate(ctx context.Context, particle domain.Particle) (*domain.Result, error)
	// Classify returns the bands containing wavelength in table order.
	Classify(ctx context.Context, wavelength float64) ([]domain.Band, error)
	// Bands returns the loaded band table in order.
	Bands(ctx context.Context) []domain.Band
}
