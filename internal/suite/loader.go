package suite

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"patr/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "./phpatr.json"

// Format selects the decoder for a suite file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, decodes, renders and validates the suite at path.
func Load(path string) (*TestSuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigurationError{Kind: KindNotFound, Path: path, Message: "configuration file not found"}
		}
		return nil, &ConfigurationError{Kind: KindIO, Path: path, Message: "failed to read configuration file", Err: err}
	}

	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, withPath(err, path)
	}

	if err := Render(cfg); err != nil {
		return nil, withPath(err, path)
	}

	if err := Validate(cfg); err != nil {
		return nil, withPath(err, path)
	}

	logging.Debug("Suite", "Loaded suite %q from %s (%d bases, %d auths, %d tests)",
		cfg.Name, path, len(cfg.Bases), len(cfg.Auths), len(cfg.Tests))
	return cfg, nil
}

// Parse decodes a suite without rendering or validating it.
func Parse(data []byte, format Format) (*TestSuiteConfig, error) {
	cfg := &TestSuiteConfig{}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &ConfigurationError{Kind: KindParse, Message: "failed to decode suite", Err: err}
	}
	return cfg, nil
}

// withPath stamps path on err and on every error it collects.
func withPath(err error, path string) error {
	var ce *ConfigurationError
	var ve *ValidationErrors
	switch {
	case errors.As(err, &ve):
		for _, e := range ve.Errors {
			e.Path = path
		}
	case errors.As(err, &ce):
		ce.Path = path
	}
	return err
}
