package v1handler

import (
	"context"
	"debroglie/internal/api/specs/v1specs"
	"debroglie/pkg/domain"
)

// DomainBandsToV1Specs converts bands, keeping table order. The result is
// never nil so it encodes as an empty array.
func DomainBandsToV1Specs(bands []domain.Band) []v1specs.Band {
	out := make([]v1specs.Band, 0, len(bands))
	for _, b := range bands {
		out = append(out, v1specs.Band{Name: b.Name, Lower: b.Lower, Upper: b.Upper})
	}

	return out
}

func DomainResultToV1Specs(in *domain.Result) *v1specs.Calculation {
	particle := v1specs.Particle{
		Mass:     in.Particle.Mass,
		Velocity: in.Particle.Velocity,
	}
	if in.Particle.Name != "" {
		particle.Name = v1specs.NewOptString(in.Particle.Name)
	}

	return &v1specs.Calculation{
		Particle:          particle,
		Wavelength:        in.Wavelength,
		Frequency:         in.Frequency,
		PhotonEnergy:      in.PhotonEnergy,
		PhotonEnergyEv:    in.PhotonEnergyEV,
		MolarPhotonEnergy: in.MolarPhotonEnergy,
		Classified:        in.Classified(),
		Bands:             DomainBandsToV1Specs(in.Bands),
	}
}

// V1SpecsToDomainParticle converts a calculation request. An omitted mass is
// left zero so the calculator resolves it from the preset.
func V1SpecsToDomainParticle(req *v1specs.CalculationRequest) domain.Particle {
	return domain.Particle{
		Name:     req.Particle.Or(""),
		Mass:     req.Mass.Or(0),
		Velocity: req.Velocity,
	}
}

// CreateCalculation runs a full calculation for the particle in the request body.
func (h *Handler) CreateCalculation(ctx context.Context, req *v1specs.CalculationRequest) (*v1specs.Calculation, error) {
	res, err := h.deps.Calculator.Calculate(ctx, V1SpecsToDomainParticle(req))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainResultToV1Specs(res), nil
}

// ClassifyWavelength classifies the wavelength query parameter.
func (h *Handler) ClassifyWavelength(
	ctx context.Context,
	params v1specs.ClassifyWavelengthParams,
) (*v1specs.Classification, error) {
	bands, err := h.deps.Calculator.Classify(ctx, params.Wavelength)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.Classification{
		Wavelength: params.Wavelength,
		Classified: len(bands) > 0,
		Bands:      DomainBandsToV1Specs(bands),
	}, nil
}

// ListBands returns the loaded band table.
func (h *Handler) ListBands(ctx context.Context) (*v1specs.BandList, error) {
	return &v1specs.BandList{Bands: DomainBandsToV1Specs(h.deps.Calculator.Bands(ctx))}, nil
}
