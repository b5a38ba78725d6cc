package domain

// Particle is one measurement supplied by the caller.
type Particle struct {
	// Name is the preset the mass came from, empty when the mass was given explicitly.
	Name string
	// Mass in kilograms.
	Mass float64
	// Velocity in meters per second.
	Velocity float64
}

// Band is a named wavelength interval [Lower, Upper) in meters, one row of the
// spectrum reference table.
type Band struct {
	Name  string  `toml:"name"  yaml:"name"`
	Lower float64 `toml:"lower" yaml:"lower"`
	Upper float64 `toml:"upper" yaml:"upper"`
}

// Contains reports whether wavelength lies in [Lower, Upper).
func (b Band) Contains(wavelength float64) bool {
	return b.Lower <= wavelength && wavelength < b.Upper
}

// Result holds every quantity derived from one Particle.
type Result struct {
	Particle Particle

	// Wavelength is the De Broglie wavelength in meters.
	Wavelength float64
	// Frequency of a photon with that wavelength, in hertz.
	Frequency float64
	// PhotonEnergy in joules.
	PhotonEnergy float64
	// PhotonEnergyEV is PhotonEnergy in electronvolts.
	PhotonEnergyEV float64
	// MolarPhotonEnergy in joules per mole.
	MolarPhotonEnergy float64

	// Bands lists the matching spectral bands in table order; empty when none matched.
	Bands []Band
}

// Classified reports whether at least one band matched.
func (r Result) Classified() bool {
	return len(r.Bands) > 0
}
