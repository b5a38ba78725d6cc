package physics

import (
	"debroglie/pkg/serrors"
	"sort"
	"strings"
)

// Rest masses in kilograms (CODATA 2018).
const (
	ElectronMass = 9.1093837015e-31
	ProtonMass   = 1.67262192369e-27
	NeutronMass  = 1.67492749804e-27
	AlphaMass    = 6.6446573357e-27
)

var presets = map[string]float64{ //nolint: gochecknoglobals
	"electron": ElectronMass,
	"proton":   ProtonMass,
	"neutron":  NeutronMass,
	"alpha":    AlphaMass,
}

// Preset returns the rest mass of a named particle. Names are case-insensitive.
func Preset(name string) (float64, error) {
	mass, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, serrors.With(serrors.ErrNotFound, "unknown particle %q (known: %s)",
			name, strings.Join(Presets(), ", "))
	}

	return mass, nil
}

// Presets lists the known particle names in alphabetical order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
