package spectrum

import (
	"bytes"
	"debroglie"
	"debroglie/pkg/serrors"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a band table.
type Format string

const (
	// FormatCSV is a headerless or "name,lower,upper" headed CSV file; '#' starts a comment line.
	FormatCSV Format = "csv"
	// FormatYAML is a YAML document with a top level "bands" list.
	FormatYAML Format = "yaml"
	// FormatTOML is a TOML document with a "[[bands]]" array of tables.
	FormatTOML Format = "toml"
)

// document is the YAML/TOML layout of a band table.
type document struct {
	Bands []Band `toml:"bands" yaml:"bands"`
}

// FormatFromPath infers the table format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", serrors.With(serrors.ErrDataLoad, "unsupported band table extension %q", filepath.Ext(path))
	}
}

// Load reads and validates a band table in the given format.
func Load(r io.Reader, format Format) (*Table, error) {
	var bands []Band
	switch format {
	case FormatCSV:
		decoded, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		bands = decoded
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "could not decode yaml band table")
		}
		bands = doc.Bands
	case FormatTOML:
		var doc document
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "could not decode toml band table")
		}
		bands = doc.Bands
	default:
		return nil, serrors.With(serrors.ErrDataLoad, "unsupported band table format %q", format)
	}

	return NewTable(bands)
}

// LoadFile reads a band table from path, inferring the format from its extension.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDataLoad, err, "could not open band table")
	}
	defer f.Close()

	table, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}

	return table, nil
}

// Default loads the embedded electromagnetic spectrum table.
func Default() (*Table, error) {
	return Load(bytes.NewReader(debroglie.DefaultBands), FormatCSV)
}

// Open loads the table at path, or the embedded default table when path is empty.
func Open(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	return LoadFile(path)
}

func decodeCSV(r io.Reader) ([]Band, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var bands []Band
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "could not read band table")
		}
		// optional header
		if first && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}

		line, _ := reader.FieldPos(0)
		lower, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "line %d: invalid lower wavelength %q", line, record[1])
		}
		upper, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrDataLoad, err, "line %d: invalid upper wavelength %q", line, record[2])
		}

		bands = append(bands, Band{Name: record[0], Lower: lower, Upper: upper})
	}

	return bands, nil
}
