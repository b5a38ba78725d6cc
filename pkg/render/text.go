package render

import (
	"debroglie/pkg/domain"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// NoClassification is printed when a wavelength matched no band.
const NoClassification = "no classification found"

// Text renders aligned "label value unit" lines, highlighting values in color
// when writing to a terminal.
type Text struct {
	label *color.Color
	value *color.Color
	band  *color.Color
	warn  *color.Color
}

// NewText creates a text renderer. noColor disables ANSI escapes regardless
// of the terminal.
func NewText(noColor bool) *Text {
	t := &Text{
		label: color.New(color.Bold),
		value: color.New(color.FgCyan),
		band:  color.New(color.FgGreen, color.Bold),
		warn:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{t.label, t.value, t.band, t.warn} {
			c.DisableColor()
		}
	}

	return t
}

// FormatFloat formats v in scientific notation with up to 10 significant digits.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func (t *Text) line(w io.Writer, label, value, unit string) error {
	if _, err := t.label.Fprintf(w, "%-16s", label); err != nil {
		return fmt.Errorf("could not write label: %w", err)
	}
	if _, err := t.value.Fprint(w, value); err != nil {
		return fmt.Errorf("could not write value: %w", err)
	}
	if unit != "" {
		unit = " " + unit
	}
	if _, err := fmt.Fprintln(w, unit); err != nil {
		return fmt.Errorf("could not write unit: %w", err)
	}

	return nil
}

// Result writes one line per quantity with its unit, then the matched bands.
func (t *Text) Result(w io.Writer, r domain.Result) error {
	lines := make([][3]string, 0, 8)
	if r.Particle.Name != "" {
		lines = append(lines, [3]string{"Particle", r.Particle.Name, ""})
	}
	lines = append(lines,
		[3]string{"Mass", FormatFloat(r.Particle.Mass), "kg"},
		[3]string{"Velocity", FormatFloat(r.Particle.Velocity), "m/s"},
		[3]string{"Wavelength", FormatFloat(r.Wavelength), "m"},
		[3]string{"Frequency", FormatFloat(r.Frequency), "Hz"},
		[3]string{"Photon energy", FormatFloat(r.PhotonEnergy), "J"},
		[3]string{"", FormatFloat(r.PhotonEnergyEV), "eV"},
		[3]string{"Molar energy", FormatFloat(r.MolarPhotonEnergy), "J/mol"},
	)
	for _, l := range lines {
		if err := t.line(w, l[0], l[1], l[2]); err != nil {
			return err
		}
	}

	return t.spectrum(w, r.Bands)
}

func (t *Text) spectrum(w io.Writer, bands []domain.Band) error {
	if _, err := t.label.Fprintf(w, "%-16s", "Spectrum"); err != nil {
		return fmt.Errorf("could not write label: %w", err)
	}
	if len(bands) == 0 {
		if _, err := t.warn.Fprintln(w, NoClassification); err != nil {
			return fmt.Errorf("could not write classification: %w", err)
		}

		return nil
	}

	for i, b := range bands {
		prefix := ""
		if i > 0 {
			prefix = fmt.Sprintf("%-16s", "")
		}
		if _, err := fmt.Fprint(w, prefix); err != nil {
			return fmt.Errorf("could not write classification: %w", err)
		}
		if _, err := t.band.Fprint(w, b.Name); err != nil {
			return fmt.Errorf("could not write classification: %w", err)
		}
		if _, err := fmt.Fprintf(w, " [%s m, %s m)\n", FormatFloat(b.Lower), FormatFloat(b.Upper)); err != nil {
			return fmt.Errorf("could not write classification: %w", err)
		}
	}

	return nil
}

// Bands prints one band per line in table order.
func (t *Text) Bands(w io.Writer, bands []domain.Band) error {
	if len(bands) == 0 {
		if _, err := t.warn.Fprintln(w, NoClassification); err != nil {
			return fmt.Errorf("could not write bands: %w", err)
		}

		return nil
	}

	for _, b := range bands {
		if _, err := t.band.Fprintf(w, "%-16s", b.Name); err != nil {
			return fmt.Errorf("could not write bands: %w", err)
		}
		if _, err := fmt.Fprintf(w, "[%s m, %s m)\n", FormatFloat(b.Lower), FormatFloat(b.Upper)); err != nil {
			return fmt.Errorf("could not write bands: %w", err)
		}
	}

	return nil
}
