// Package debroglie holds the reference data shipped with the calculator.
package debroglie

import _ "embed"

// DefaultBands is the electromagnetic spectrum table used when no table path is configured.
// Rows are: band name, lower wavelength in meters, upper wavelength in meters.
//
//go:embed data/bands.csv
var DefaultBands []byte
