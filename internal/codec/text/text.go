// Package text encodes records to human-readable structured formats.
//
// Field policies (rename, omit-when-absent, always-omit) are declared on
// the record with struct tags, one tag key per format:
//
//	Name  string  `json:"full_name" yaml:"full_name" toml:"full_name"`
//	Email *string `json:"email,omitempty" yaml:"email,omitempty" toml:"email,omitempty"`
//	Pass  string  `json:"-" yaml:"-" toml:"-"`
//
// This package only picks the right library for the requested format and
// classifies failures; the libraries do the actual encoding:
//
//	json → encoding/json
//	yaml → gopkg.in/yaml.v3
//	toml → github.com/BurntSushi/toml
package text

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a supported text encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{JSON, YAML, TOML}

var (
	// ErrEncode wraps any failure to represent a value in a format.
	ErrEncode = errors.New("text: cannot encode value")
	// ErrDecode wraps any failure to read input into a value.
	ErrDecode = errors.New("text: cannot decode input")
	// ErrUnknownFormat is returned for format names outside Formats.
	ErrUnknownFormat = errors.New("text: unknown format")
)

// ParseFormat maps a case-insensitive name ("json", "YAML", "yml", ...)
// to a Format. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode returns the encoding of v in format f.
//
// JSON output is compact with no trailing newline, e.g.
// {"full_name":"Bob"}. YAML and TOML output end with a newline, as the
// libraries produce it.
func Encode(f Format, v any) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch f {
	case JSON:
		out, err = json.Marshal(v)
	case YAML:
		out, err = yaml.Marshal(v)
	case TOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(v)
		out = buf.Bytes()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if err != nil {
		return nil, fmt.Errorf("%w as %s: %v", ErrEncode, f, err)
	}

	return out, nil
}

// Decode reads data in format f into v, which must be a pointer.
func Decode(f Format, data []byte, v any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	case TOML:
		_, err = toml.Decode(string(data), v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if err != nil {
		return fmt.Errorf("%w as %s: %v", ErrDecode, f, err)
	}

	return nil
}
