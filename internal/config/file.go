package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	Position        *string `toml:"position"`
	Title           *string `toml:"title"`
	IDPrefix        *string `toml:"id_prefix"`
	StripDiacritics *bool   `toml:"strip_diacritics"`
	Enabled         *bool   `toml:"enabled"`
	Cache           *bool   `toml:"cache"`
}

// ConfigDir returns the simpletoc config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "simpletoc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "simpletoc")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	return loadPath(ConfigPath(), cfg)
}

func loadPath(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Position != nil {
		cfg.Position = *fc.Position
	}
	if fc.Title != nil {
		cfg.Title = *fc.Title
	}
	if fc.IDPrefix != nil {
		cfg.IDPrefix = *fc.IDPrefix
	}
	if fc.StripDiacritics != nil {
		cfg.StripDiacritics = *fc.StripDiacritics
	}
	if fc.Enabled != nil {
		cfg.Enabled = *fc.Enabled
	}
	if fc.Cache != nil {
		cfg.Cache = *fc.Cache
	}

	return true, nil
}
