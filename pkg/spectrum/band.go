// Package spectrum classifies wavelengths against a table of named
// electromagnetic spectrum bands.
//
// A Table is built once, validated on construction, and never mutated
// afterwards, so one table may be shared by any number of goroutines.
package spectrum

import (
	"debroglie/pkg/domain"
	"debroglie/pkg/serrors"
	"math"
	"strings"
)

// Band is one row of the table.
type Band = domain.Band

func validate(b Band) error {
	if strings.TrimSpace(b.Name) == "" {
		return serrors.With(serrors.ErrDataLoad, "band name is empty")
	}
	if !finite(b.Lower) || !finite(b.Upper) {
		return serrors.With(serrors.ErrDataLoad, "band %q has non-finite bounds [%g, %g)", b.Name, b.Lower, b.Upper)
	}
	if b.Lower >= b.Upper {
		return serrors.With(serrors.ErrDataLoad,
			"band %q lower bound %g must be less than upper bound %g", b.Name, b.Lower, b.Upper)
	}

	return nil
}

// Table is an ordered, read-only set of bands.
type Table struct {
	bands []Band
}

// NewTable validates bands and returns a table holding a private copy of them.
// Overlapping bands are accepted; a wavelength inside an overlap matches each of them.
func NewTable(bands []Band) (*Table, error) {
	if len(bands) == 0 {
		return nil, serrors.With(serrors.ErrDataLoad, "band table contains no bands")
	}

	owned := make([]Band, len(bands))
	for i, b := range bands {
		b.Name = strings.TrimSpace(b.Name)
		if err := validate(b); err != nil {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "band %d", i+1)
		}
		owned[i] = b
	}

	return &Table{bands: owned}, nil
}

// Bands returns a copy of the table's bands in table order.
func (t *Table) Bands() []Band {
	if t == nil {
		return nil
	}

	return append([]Band(nil), t.bands...)
}

// Len returns the number of bands in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.bands)
}

// Classify returns every band containing wavelength, in table order.
// An empty result means no band covers the wavelength and is not an error.
// A nil table yields a data load error; a non-finite wavelength a domain error.
func (t *Table) Classify(wavelength float64) ([]Band, error) {
	if t == nil {
		return nil, serrors.With(serrors.ErrDataLoad, "band table is not loaded")
	}
	if !finite(wavelength) {
		return nil, serrors.With(serrors.ErrDomain, "wavelength must be finite, got %g", wavelength)
	}

	matches := make([]Band, 0, 1)
	for _, b := range t.bands {
		if b.Contains(wavelength) {
			matches = append(matches, b)
		}
	}

	return matches, nil
}

// Names returns the names of bands in order.
func Names(bands []Band) []string {
	names := make([]string, len(bands))
	for i, b := range bands {
		names[i] = b.Name
	}

	return names
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
