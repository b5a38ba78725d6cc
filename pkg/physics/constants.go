// Package physics implements the quantum-mechanical formulas of the calculator:
// the De Broglie wavelength of a massive particle and the Planck–Einstein
// photon energy for a wavelength. All functions are pure and safe for
// concurrent use.
package physics

import (
	"debroglie/pkg/serrors"
	"math"
)

// SI values (CODATA 2018 exact definitions).
const (
	// PlanckConstant in joule seconds.
	PlanckConstant = 6.62607015e-34
	// SpeedOfLight in vacuum, meters per second.
	SpeedOfLight = 299792458.0
	// AvogadroNumber in entities per mole.
	AvogadroNumber = 6.02214076e23
	// ElementaryCharge in coulombs, used to express energies in electronvolts.
	ElementaryCharge = 1.602176634e-19
)

// Constants is the set of physical constants a calculation runs with.
// The zero value is not usable; start from Default and override fields.
type Constants struct {
	Planck       float64
	SpeedOfLight float64
	Avogadro     float64
}

// Default holds the SI values.
var Default = Constants{ //nolint: gochecknoglobals
	Planck:       PlanckConstant,
	SpeedOfLight: SpeedOfLight,
	Avogadro:     AvogadroNumber,
}

// Validate reports a domain error when any constant is non-finite or not positive.
func (c Constants) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"planck constant", c.Planck},
		{"speed of light", c.SpeedOfLight},
		{"avogadro number", c.Avogadro},
	} {
		if !isFinite(v.value) || v.value <= 0 {
			return serrors.With(serrors.ErrDomain, "%s must be a finite positive number, got %g", v.name, v.value)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
