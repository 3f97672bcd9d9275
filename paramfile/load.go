package paramfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/popgen/params"
)

// Format is the encoding of a parameter file.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a file extension or format that is not
// supported.
var ErrUnknownFormat = errors.New("paramfile: unknown format")

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Parse decodes a parameter file without building the parameters.
func Parse(r io.Reader, format Format) (*File, error) {
	f := &File{}

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)

		if err := decoder.Decode(f); err != nil {
			return nil, fmt.Errorf("paramfile: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(f); err != nil {
			return nil, fmt.Errorf("paramfile: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return f, nil
}

// Decode parses a parameter file and builds its parameters.
func Decode(r io.Reader, format Format) (params.Params, error) {
	f, err := Parse(r, format)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Load reads the file at path and builds its parameters. The result is not
// validated.
func Load(path string) (params.Params, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(data), format)
}
