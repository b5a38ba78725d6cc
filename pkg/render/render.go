// Package render turns calculation results into human or machine readable
// output. The calculator core never formats anything itself; commands pick
// a Renderer and hand it plain domain values.
package render

import (
	"debroglie/pkg/domain"
	"debroglie/pkg/serrors"
	"io"
	"strings"
)

// Renderer writes calculation results and band listings to w.
type Renderer interface {
	Result(w io.Writer, r domain.Result) error
	Bands(w io.Writer, bands []domain.Band) error
}

// Output formats accepted by New.
const (
	// FormatText is aligned human readable output; the default.
	FormatText = "text"
	// FormatJSON is one JSON document per invocation.
	FormatJSON = "json"
)

// New returns the renderer for format ("text" or "json").
func New(format string, noColor bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewText(noColor), nil
	case FormatJSON:
		return JSON{Indent: 2}, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown output format %q", format)
	}
}
