package environment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

// ErrUnsupportedFormat is returned when a config file extension is not
// .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// LoadFile decodes the config file at path into cfg, choosing TOML or YAML
// from the file extension. An empty path is a no-op.
//
// File values are meant to be layered under the environment: call
// ParseEnvTags afterwards so set variables override them and defaults only
// fill what the file left empty.
func LoadFile(path string, cfg any) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := Decode(filepath.Ext(path), bytes.NewReader(data), cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// Decode decodes r into cfg using the format named by ext (".toml",
// ".yaml" or ".yml").
func Decode(ext string, r io.Reader, cfg any) error {
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("toml decode: unknown keys %v", undecoded)
		}
		return nil

	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml decode: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// EncodeTOML writes cfg to w as TOML.
func EncodeTOML(w io.Writer, cfg any) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("toml encode: %w", err)
	}
	return nil
}
