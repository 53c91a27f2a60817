package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"pipecheck/internal/logger"
	"pipecheck/internal/version"
)

// Config is the single configuration record rendered by the CLI.
// It is constructed once per run, either from built-in defaults or by parsing
// a file supplied via --config, and never mutated afterwards.
type Config struct {
	Name     string   `json:"name" yaml:"name"`
	Version  string   `json:"version" yaml:"version"`
	Features []string `json:"features" yaml:"features"`
}

// Default returns the built-in configuration used when no file is given or
// when the given file cannot be read.
func Default() Config {
	return Config{
		Name:     "test-rust-app",
		Version:  version.Version,
		Features: []string{"basic"},
	}
}

// Load resolves the configuration from the file at path.
// An unreadable file is not fatal: a warning naming the path goes to standard
// error and the defaults are used instead. A file that reads fine but fails
// to parse or validate returns an error wrapping ErrParse, which is fatal.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Warning: Could not read config file '%s', using defaults\n", path)
		return Default(), nil
	}
	return Parse(raw, filepath.Ext(path))
}

// Parse decodes raw configuration bytes. The .yaml and .yml extensions select
// the YAML decoder; everything else is treated as JSON. The decoded document
// is validated against the embedded schema before it lands in a Config, so a
// missing field or a type mismatch is a parse error, while unknown fields are
// ignored.
func Parse(raw []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if err := validate(doc); err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
	default:
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if err := validate(doc); err != nil {
			return Config{}, err
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return cfg, nil
}
