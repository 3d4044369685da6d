package argmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/windrose/pkg/errors"
)

// Format identifies an argument-map file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Map is the on-disk argument-map document.
type Map struct {
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Nodes []Node `json:"nodes" toml:"nodes" yaml:"nodes"`
}

// Root returns the first node without a parent.
func (m Map) Root() (Node, bool) {
	for _, n := range m.Nodes {
		if n.IsRoot() {
			return n, true
		}
	}
	return Node{}, false
}

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer map format from %q (want .json, .toml, .yaml or .yml)", path)
}

// Read decodes a map from r. JSON input may also be a bare array of nodes.
func Read(r io.Reader, f Format) (Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Map{}, err
	}
	return Unmarshal(data, f)
}

// Unmarshal decodes a map document.
func Unmarshal(data []byte, f Format) (Map, error) {
	var m Map
	switch f {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &m.Nodes); err != nil {
				return Map{}, errs.Wrap(errs.ErrCodeInvalidMap, err, "decode json nodes")
			}
			return m, nil
		}
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return Map{}, errs.Wrap(errs.ErrCodeInvalidMap, err, "decode json map")
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &m); err != nil {
			return Map{}, errs.Wrap(errs.ErrCodeInvalidMap, err, "decode toml map")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Map{}, errs.Wrap(errs.ErrCodeInvalidMap, err, "decode yaml map")
		}
	default:
		return Map{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported map format %q", f)
	}
	return m, nil
}

// Marshal encodes a map document.
func Marshal(m Map, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("encode toml map: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encode yaml map: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported map format %q", f)
}

// Write encodes m to w.
func Write(w io.Writer, m Map, f Format) error {
	data, err := Marshal(m, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadFile loads a map, choosing the codec from the file extension.
func ReadFile(path string) (Map, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Map{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Map{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "map file %s", path)
	}
	if err != nil {
		return Map{}, err
	}
	m, err := Unmarshal(data, f)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteFile stores a map, choosing the codec from the file extension.
func WriteFile(m Map, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(m, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
