// Package config loads the cminus CLI's settings from a cminus.toml file,
// following the teacher's module-configuration pattern (src/mods/load.go,
// src/mods/module.go) of a small, flatly-structured settings object
// decoded with github.com/pelletier/go-toml and finished off with
// defaulting logic applied after decode.
package config

import (
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"
)

// FileName is the conventional name of a cminus project's config file.
const FileName = "cminus.toml"

// Config holds the settings that govern one run of the cminus CLI.
type Config struct {
	// LogLevel names the diagnostic verbosity: "silent", "error", "warn", or
	// "verbose". Empty is treated as unset and defaulted by Load.
	LogLevel string `toml:"log-level"`

	// TreatWarningsAsErrors makes a warning raise the had-error flag the
	// same way a fatal diagnostic does.
	TreatWarningsAsErrors bool `toml:"treat-warnings-as-errors"`
}

// defaultLogLevel is applied when neither the config file nor a CLI flag
// names a log level.
const defaultLogLevel = "verbose"

// Default returns the configuration used when no cminus.toml is present.
func Default() *Config {
	return &Config{LogLevel: defaultLogLevel}
}

// Load reads and decodes the TOML config file at path. A missing file is
// not an error: Load returns Default() instead, mirroring the CLI's
// "config is optional" framing (SPEC_FULL.md §6.3).
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := toml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}
