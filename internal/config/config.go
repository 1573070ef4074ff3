// Package config loads the optional sqlsweep.yaml project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound)
// and fall back to defaults; a missing file is not a failure.
var ErrConfigNotFound = errors.New("config file not found")

// ScannerConfig configures how the external scanner is invoked.
type ScannerConfig struct {
	Binary    string   `yaml:"binary,omitempty"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
	Marker    string   `yaml:"marker,omitempty"`
}

// ProjectConfig is the root of sqlsweep.yaml.
type ProjectConfig struct {
	Scanner ScannerConfig `yaml:"scanner"`
}

const ConfigFileName = "sqlsweep.yaml"

// Load reads sqlsweep.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
