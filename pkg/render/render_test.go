package render_test

import (
	"bytes"
	"debroglie/pkg/domain"
	"debroglie/pkg/render"
	"debroglie/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleResult() domain.Result {
	return domain.Result{
		Particle:          domain.Particle{Name: "electron", Mass: 9.10938e-31, Velocity: 4e6},
		Wavelength:        1.8184745e-10,
		Frequency:         1.6486e18,
		PhotonEnergy:      1.0923694e-15,
		PhotonEnergyEV:    6817.98,
		MolarPhotonEnergy: 6.578402e8,
		Bands:             []domain.Band{{Name: "X-ray", Lower: 1e-11, Upper: 1e-8}},
	}
}

func TestText_Result(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewText(true).Result(&buf, sampleResult()))

	want := "" +
		"Particle        electron\n" +
		"Mass            9.10938e-31 kg\n" +
		"Velocity        4000000 m/s\n" +
		"Wavelength      1.8184745e-10 m\n" +
		"Frequency       1.6486e+18 Hz\n" +
		"Photon energy   1.0923694e-15 J\n" +
		"                6817.98 eV\n" +
		"Molar energy    657840200 J/mol\n" +
		"Spectrum        X-ray [1e-11 m, 1e-08 m)\n"
	require.Equal(t, want, buf.String())
}

func TestText_NoClassification(t *testing.T) {
	r := sampleResult()
	r.Particle.Name = ""
	r.Bands = nil

	var buf bytes.Buffer
	require.NoError(t, render.NewText(true).Result(&buf, r))
	require.NotContains(t, buf.String(), "Particle")
	require.Contains(t, buf.String(), "Spectrum        "+render.NoClassification+"\n")
}

func TestText_MultipleBands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewText(true).Bands(&buf, []domain.Band{
		{Name: "Visible", Lower: 4e-7, Upper: 7e-7},
		{Name: "Infrared", Lower: 7e-7, Upper: 1e-3},
	}))
	require.Equal(t, "Visible         [4e-07 m, 7e-07 m)\nInfrared        [7e-07 m, 0.001 m)\n", buf.String())
}

func TestJSON_Result(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON{}.Result(&buf, sampleResult()))

	require.JSONEq(t, `{
		"particle": {"name": "electron", "mass": 9.10938e-31, "velocity": 4e6},
		"wavelength": 1.8184745e-10,
		"frequency": 1.6486e18,
		"photonEnergy": 1.0923694e-15,
		"photonEnergyEv": 6817.98,
		"molarPhotonEnergy": 6.578402e8,
		"classified": true,
		"bands": [{"name": "X-ray", "lower": 1e-11, "upper": 1e-8}]
	}`, buf.String())
}

func TestJSON_EmptyBandsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON{Indent: 2}.Bands(&buf, nil))
	require.JSONEq(t, `{"bands": []}`, buf.String())
}

func TestNew(t *testing.T) {
	r, err := render.New("json", true)
	require.NoError(t, err)
	require.IsType(t, render.JSON{}, r)

	r, err = render.New("", false)
	require.NoError(t, err)
	require.IsType(t, &render.Text{}, r)

	_, err = render.New("xml", true)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
