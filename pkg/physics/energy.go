package physics

import "debroglie/pkg/serrors"

func checkWavelength(wavelength float64) error {
	if !isFinite(wavelength) || wavelength == 0 {
		return serrors.With(serrors.ErrDomain, "wavelength must be a finite non-zero number, got %g", wavelength)
	}

	return nil
}

// PhotonEnergy returns E = h·c / λ in joules.
func (c Constants) PhotonEnergy(wavelength float64) (float64, error) {
	if err := checkWavelength(wavelength); err != nil {
		return 0, err
	}

	return (c.Planck * c.SpeedOfLight) / wavelength, nil
}

// MolarPhotonEnergy returns the energy of one mole of photons of the given
// wavelength in joules per mole. The single photon energy is derived from the
// wavelength with the same constants, so h, c and N_A always come from one set.
func (c Constants) MolarPhotonEnergy(wavelength float64) (float64, error) {
	energy, err := c.PhotonEnergy(wavelength)
	if err != nil {
		return 0, err
	}

	return energy * c.Avogadro, nil
}

// Frequency returns ν = c / λ in hertz.
func (c Constants) Frequency(wavelength float64) (float64, error) {
	if err := checkWavelength(wavelength); err != nil {
		return 0, err
	}

	return c.SpeedOfLight / wavelength, nil
}

// PhotonEnergy computes the photon energy with the Default constants.
func PhotonEnergy(wavelength float64) (float64, error) {
	return Default.PhotonEnergy(wavelength)
}

// MolarPhotonEnergy computes the molar photon energy with the Default constants.
func MolarPhotonEnergy(wavelength float64) (float64, error) {
	return Default.MolarPhotonEnergy(wavelength)
}

// Frequency computes the photon frequency with the Default constants.
func Frequency(wavelength float64) (float64, error) {
	return Default.Frequency(wavelength)
}

// ToElectronvolts converts an energy in joules to electronvolts.
func ToElectronvolts(joules float64) float64 {
	return joules / ElementaryCharge
}
