package physics

import "debroglie/pkg/serrors"

// Wavelength returns the De Broglie wavelength λ = h / (m·v) in meters.
//
// mass must be finite and positive, velocity finite and non-zero. The sign of
// the result follows the sign of velocity.
func (c Constants) Wavelength(mass, velocity float64) (float64, error) {
	if !isFinite(mass) || mass <= 0 {
		return 0, serrors.With(serrors.ErrDomain, "mass must be a finite positive number, got %g", mass)
	}
	if !isFinite(velocity) || velocity == 0 {
		return 0, serrors.With(serrors.ErrDomain, "velocity must be a finite non-zero number, got %g", velocity)
	}

	momentum := mass * velocity
	if !isFinite(momentum) || momentum == 0 {
		return 0, serrors.With(serrors.ErrDomain, "momentum %g·%g is not representable", mass, velocity)
	}

	return c.Planck / momentum, nil
}

// Wavelength computes the De Broglie wavelength with the Default constants.
func Wavelength(mass, velocity float64) (float64, error) {
	return Default.Wavelength(mass, velocity)
}
