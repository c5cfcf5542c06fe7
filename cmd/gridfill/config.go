package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gridfill/classify"
)

// fileConfig holds defaults read from the TOML config file. Flags override
// config values; the API key is only ever read from the environment.
type fileConfig struct {
	Marker string `toml:"marker"`
	Model  string `toml:"model"`
}

// loadConfig reads the config file at path, or ~/.gridfill.toml when path is
// empty. A missing default config file is not an error.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{Model: classify.DefaultGeminiModel}

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".gridfill.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}
