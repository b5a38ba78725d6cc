package calculator_test

import (
	"context"
	"debroglie/internal/calculator"
	"debroglie/pkg/domain"
	"debroglie/pkg/physics"
	"debroglie/pkg/serrors"
	"debroglie/pkg/spectrum"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestCalculator(t *testing.T) (calculator.Calculator, *sdkmetric.ManualReader) {
	t.Helper()

	table, err := spectrum.Default()
	require.NoError(t, err)

	reader := sdkmetric.NewManualReader()
	c, err := calculator.New(calculator.Options{
		Table:         table,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	})
	require.NoError(t, err)

	return c, reader
}

// outcomes sums the calculations counter by outcome attribute.
func outcomes(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "debroglie.calculations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				got[v.AsString()] += dp.Value
			}
		}
	}

	return got
}

func TestCalculate_Electron(t *testing.T) {
	c, reader := newTestCalculator(t)

	res, err := c.Calculate(context.Background(), domain.Particle{Mass: 9.10938e-31, Velocity: 4e6})
	require.NoError(t, err)

	require.InEpsilon(t, 1.8184737738719174e-10, res.Wavelength, 1e-5)
	require.InEpsilon(t, 1.092369795326876e-15, res.PhotonEnergy, 1e-5)
	require.InEpsilon(t, 6.5784e8, res.MolarPhotonEnergy, 1e-4)
	require.InEpsilon(t, physics.SpeedOfLight/res.Wavelength, res.Frequency, 1e-12)
	require.InEpsilon(t, res.PhotonEnergy/physics.ElementaryCharge, res.PhotonEnergyEV, 1e-12)
	require.Equal(t, []string{"X-ray"}, spectrum.Names(res.Bands))
	require.True(t, res.Classified())

	require.Equal(t, map[string]int64{"ok": 1}, outcomes(t, reader))
}

func TestCalculate_Preset(t *testing.T) {
	c, _ := newTestCalculator(t)

	res, err := c.Calculate(context.Background(), domain.Particle{Name: "electron", Velocity: 4e6})
	require.NoError(t, err)
	require.Equal(t, physics.ElectronMass, res.Particle.Mass)
	require.Equal(t, "electron", res.Particle.Name)

	_, err = c.Calculate(context.Background(), domain.Particle{Name: "graviton", Velocity: 1})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCalculate_PresetWithExplicitMass(t *testing.T) {
	c, reader := newTestCalculator(t)

	res, err := c.Calculate(context.Background(), domain.Particle{Name: "electron", Mass: 1, Velocity: 1})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Nil(t, res)

	require.Equal(t, map[string]int64{"BAD_REQUEST": 1}, outcomes(t, reader))
}

func TestCalculate_DomainError(t *testing.T) {
	c, reader := newTestCalculator(t)

	_, err := c.Calculate(context.Background(), domain.Particle{Mass: 1, Velocity: 0})
	require.ErrorIs(t, err, serrors.ErrDomain)

	_, err = c.Calculate(context.Background(), domain.Particle{Mass: 0, Velocity: 1})
	require.ErrorIs(t, err, serrors.ErrDomain)

	require.Equal(t, map[string]int64{"DOMAIN": 2}, outcomes(t, reader))
}

func TestCalculate_NoClassificationIsNotAnError(t *testing.T) {
	c, _ := newTestCalculator(t)

	// a baseball has a wavelength far below any band
	res, err := c.Calculate(context.Background(), domain.Particle{Mass: 0.145, Velocity: 40})
	require.NoError(t, err)
	require.Empty(t, res.Bands)
	require.False(t, res.Classified())

	// negative velocity gives a negative wavelength that matches nothing
	res, err = c.Calculate(context.Background(), domain.Particle{Mass: 9.10938e-31, Velocity: -4e6})
	require.NoError(t, err)
	require.Less(t, res.Wavelength, 0.0)
	require.Empty(t, res.Bands)
}

func TestCalculate_CustomConstants(t *testing.T) {
	table, err := spectrum.NewTable([]spectrum.Band{{Name: "Unit", Lower: 0.1, Upper: 1}})
	require.NoError(t, err)

	c, err := calculator.New(calculator.Options{
		Constants: physics.Constants{Planck: 1, SpeedOfLight: 2, Avogadro: 3},
		Table:     table,
	})
	require.NoError(t, err)

	res, err := c.Calculate(context.Background(), domain.Particle{Mass: 2, Velocity: 4})
	require.NoError(t, err)
	require.Equal(t, 0.125, res.Wavelength)
	require.Equal(t, 16.0, res.PhotonEnergy)
	require.Equal(t, 48.0, res.MolarPhotonEnergy)
	require.Equal(t, []string{"Unit"}, spectrum.Names(res.Bands))
}

func TestCalculate_Idempotent(t *testing.T) {
	c, _ := newTestCalculator(t)
	p := domain.Particle{Name: "proton", Velocity: 1e3}

	a, err := c.Calculate(context.Background(), p)
	require.NoError(t, err)
	b, err := c.Calculate(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestClassifyAndBands(t *testing.T) {
	c, _ := newTestCalculator(t)

	bands, err := c.Classify(context.Background(), 5e-7)
	require.NoError(t, err)
	require.Equal(t, []string{"Visible"}, spectrum.Names(bands))

	require.Len(t, c.Bands(context.Background()), 7)
}

func TestNew_Validation(t *testing.T) {
	_, err := calculator.New(calculator.Options{})
	require.ErrorIs(t, err, serrors.ErrDataLoad)

	table, err := spectrum.Default()
	require.NoError(t, err)
	_, err = calculator.New(calculator.Options{
		Table:     table,
		Constants: physics.Constants{Planck: -1, SpeedOfLight: 1, Avogadro: 1},
	})
	require.ErrorIs(t, err, serrors.ErrDomain)
}
