package render

import (
	"debroglie/pkg/domain"
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// JSON renders results as JSON documents.
type JSON struct {
	// Indent is the number of spaces per nesting level; zero writes compact JSON.
	Indent int
}

func (j JSON) write(w io.Writer, fn func(e *jx.Encoder)) error {
	var e jx.Encoder
	e.SetIdent(j.Indent)
	fn(&e)
	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return fmt.Errorf("could not write json: %w", err)
	}

	return nil
}

// Result writes r as one JSON document.
func (j JSON) Result(w io.Writer, r domain.Result) error {
	return j.write(w, func(e *jx.Encoder) { EncodeResult(e, r) })
}

// Bands writes {"bands": [...]}.
func (j JSON) Bands(w io.Writer, bands []domain.Band) error {
	return j.write(w, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("bands", func(e *jx.Encoder) { EncodeBands(e, bands) })
		})
	})
}

// EncodeResult writes r as a JSON object.
func EncodeResult(e *jx.Encoder, r domain.Result) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("particle", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				if r.Particle.Name != "" {
					e.Field("name", func(e *jx.Encoder) { e.Str(r.Particle.Name) })
				}
				e.Field("mass", func(e *jx.Encoder) { e.Float64(r.Particle.Mass) })
				e.Field("velocity", func(e *jx.Encoder) { e.Float64(r.Particle.Velocity) })
			})
		})
		e.Field("wavelength", func(e *jx.Encoder) { e.Float64(r.Wavelength) })
		e.Field("frequency", func(e *jx.Encoder) { e.Float64(r.Frequency) })
		e.Field("photonEnergy", func(e *jx.Encoder) { e.Float64(r.PhotonEnergy) })
		e.Field("photonEnergyEv", func(e *jx.Encoder) { e.Float64(r.PhotonEnergyEV) })
		e.Field("molarPhotonEnergy", func(e *jx.Encoder) { e.Float64(r.MolarPhotonEnergy) })
		e.Field("classified", func(e *jx.Encoder) { e.Bool(r.Classified()) })
		e.Field("bands", func(e *jx.Encoder) { EncodeBands(e, r.Bands) })
	})
}

// EncodeBands writes bands as a JSON array, never null.
func EncodeBands(e *jx.Encoder, bands []domain.Band) {
	e.Arr(func(e *jx.Encoder) {
		for _, b := range bands {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(b.Name) })
				e.Field("lower", func(e *jx.Encoder) { e.Float64(b.Lower) })
				e.Field("upper", func(e *jx.Encoder) { e.Float64(b.Upper) })
			})
		}
	})
}
