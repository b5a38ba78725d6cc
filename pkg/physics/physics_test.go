package physics_test

import (
	"debroglie/pkg/physics"
	"debroglie/pkg/serrors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	electronMass      = 9.10938e-31
	electronLambda    = 1.8184737738719174e-10
	electronEnergy    = 1.092369795326876e-15
	electronMolar     = 6.5784e8
	relativeTolerance = 1e-5
)

func TestWavelength(t *testing.T) {
	got, err := physics.Wavelength(electronMass, 4e6)
	require.NoError(t, err)
	require.InEpsilon(t, electronLambda, got, relativeTolerance)

	got, err = physics.Wavelength(physics.ElectronMass, 4e6)
	require.NoError(t, err)
	require.InEpsilon(t, electronLambda, got, 1e-8)
}

func TestWavelength_Formula(t *testing.T) {
	cases := []struct {
		mass, velocity float64
	}{
		{1, 1},
		{physics.ProtonMass, 1e3},
		{physics.NeutronMass, 2.2e3},
		{0.145, 40},
		{electronMass, -4e6},
	}
	for _, tc := range cases {
		got, err := physics.Wavelength(tc.mass, tc.velocity)
		require.NoError(t, err)
		require.Equal(t, physics.PlanckConstant/(tc.mass*tc.velocity), got)
	}
}

func TestWavelength_NegativeVelocityKeepsSign(t *testing.T) {
	got, err := physics.Wavelength(electronMass, -4e6)
	require.NoError(t, err)
	require.Less(t, got, 0.0)
	require.InEpsilon(t, -electronLambda, got, relativeTolerance)
}

func TestWavelength_CustomPlanck(t *testing.T) {
	c := physics.Default
	c.Planck = 1

	got, err := c.Wavelength(2, 4)
	require.NoError(t, err)
	require.Equal(t, 0.125, got)
}

func TestWavelength_DomainErrors(t *testing.T) {
	cases := []struct {
		name           string
		mass, velocity float64
	}{
		{"zero velocity", 1, 0},
		{"zero mass", 0, 1},
		{"negative mass", -1, 1},
		{"nan mass", math.NaN(), 1},
		{"inf mass", math.Inf(1), 1},
		{"nan velocity", 1, math.NaN()},
		{"inf velocity", 1, math.Inf(-1)},
		{"momentum underflow", 1e-300, 1e-300},
		{"momentum overflow", 1e300, 1e300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := physics.Wavelength(tc.mass, tc.velocity)
			require.ErrorIs(t, err, serrors.ErrDomain)
		})
	}
}

func TestPhotonEnergy(t *testing.T) {
	got, err := physics.PhotonEnergy(electronLambda)
	require.NoError(t, err)
	require.InEpsilon(t, electronEnergy, got, 1e-7)

	h, c := physics.Default.Planck, physics.Default.SpeedOfLight
	for _, lambda := range []float64{5e-7, 1e-3, -2e-9} {
		got, err := physics.PhotonEnergy(lambda)
		require.NoError(t, err)
		require.Equal(t, (h*c)/lambda, got)
	}
}

func TestMolarPhotonEnergy(t *testing.T) {
	got, err := physics.MolarPhotonEnergy(electronLambda)
	require.NoError(t, err)
	require.InEpsilon(t, electronMolar, got, 1e-4)

	energy, err := physics.PhotonEnergy(electronLambda)
	require.NoError(t, err)
	require.Equal(t, energy*physics.AvogadroNumber, got)
}

func TestMolarPhotonEnergy_UsesReceiverConstants(t *testing.T) {
	c := physics.Constants{Planck: 2, SpeedOfLight: 3, Avogadro: 10}

	got, err := c.MolarPhotonEnergy(6)
	require.NoError(t, err)
	require.Equal(t, 10.0, got)
}

func TestFrequency(t *testing.T) {
	got, err := physics.Frequency(5e-7)
	require.NoError(t, err)
	require.InEpsilon(t, 5.99584916e14, got, 1e-9)
}

func TestEnergy_DomainErrors(t *testing.T) {
	for _, lambda := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := physics.PhotonEnergy(lambda)
		require.ErrorIs(t, err, serrors.ErrDomain, "photon energy for %g", lambda)

		_, err = physics.MolarPhotonEnergy(lambda)
		require.ErrorIs(t, err, serrors.ErrDomain, "molar energy for %g", lambda)

		_, err = physics.Frequency(lambda)
		require.ErrorIs(t, err, serrors.ErrDomain, "frequency for %g", lambda)
	}
}

func TestIdempotent(t *testing.T) {
	a, errA := physics.Wavelength(electronMass, 4e6)
	b, errB := physics.Wavelength(electronMass, 4e6)
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, a, b)

	e1, _ := physics.MolarPhotonEnergy(a)
	e2, _ := physics.MolarPhotonEnergy(b)
	require.Equal(t, e1, e2)
}

func TestToElectronvolts(t *testing.T) {
	require.InEpsilon(t, 1.0, physics.ToElectronvolts(physics.ElementaryCharge), 1e-15)
	// 500 nm photon is about 2.48 eV
	e, err := physics.PhotonEnergy(5e-7)
	require.NoError(t, err)
	require.InDelta(t, 2.48, physics.ToElectronvolts(e), 0.01)
}

func TestConstantsValidate(t *testing.T) {
	require.NoError(t, physics.Default.Validate())

	bad := physics.Default
	bad.SpeedOfLight = 0
	require.ErrorIs(t, bad.Validate(), serrors.ErrDomain)

	bad = physics.Default
	bad.Avogadro = math.NaN()
	require.ErrorIs(t, bad.Validate(), serrors.ErrDomain)
}

func TestPreset(t *testing.T) {
	m, err := physics.Preset("Electron")
	require.NoError(t, err)
	require.Equal(t, physics.ElectronMass, m)

	_, err = physics.Preset("muon")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.Equal(t, []string{"alpha", "electron", "neutron", "proton"}, physics.Presets())
}
