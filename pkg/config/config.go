// Package config loads and saves the CLI configuration file. The file
// is JSON, holds the connection settings and the plugin token issued by
// the app, and can be overridden per-field through environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/vtstools/vts/pkg/utils"
)

// ErrNotInitialized is returned by Load when no config file exists yet.
var ErrNotInitialized = errors.New("config file not found (run `vts config init` to create it)")

type Config struct {
	Host            string `json:"host" env:"VTS_HOST"`
	Port            int    `json:"port" env:"VTS_PORT"`
	Token           string `json:"token,omitempty" env:"VTS_TOKEN"`
	PluginName      string `json:"plugin_name" env:"VTS_PLUGIN_NAME"`
	PluginDeveloper string `json:"plugin_developer" env:"VTS_PLUGIN_DEVELOPER"`
}

func Default() *Config {
	return &Config{
		Host:            "localhost",
		Port:            8001,
		PluginName:      "VTube Studio CLI",
		PluginDeveloper: "vts",
	}
}

// Load reads the config file at path and applies environment overrides.
// A missing file is ErrNotInitialized; every command except `config
// init` needs the file to exist.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads the config file at path without applying environment
// overrides. Writers use it so transient overrides never get persisted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (looked in %s)", ErrNotInitialized, path)
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path. The file holds the plugin token, so it is
// written atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return utils.WriteFileSecure(path, append(data, '\n'), 0o600, 0o700)
}
