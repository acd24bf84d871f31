// Package config loads the toolkit configuration from a JSON file,
// falling back to defaults when no file is present.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/rskv-p/trie/pkg/x_log"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TRIE_CONFIG"

const defaultPath = "./trie.json"

// Config collects the settings of every harness command.
type Config struct {
	// Variant selects the storage strategy: list, array or hash
	// (or 1, 2, 3).
	Variant string `mapstructure:"variant"`

	// Symbols are the printable characters the array variant declares;
	// the terminator is prepended automatically.
	Symbols string `mapstructure:"symbols"`

	// Listen is the HTTP facade address.
	Listen string `mapstructure:"listen"`

	// HistoryDB is the sqlite file recording benchmark runs. Empty
	// disables history.
	HistoryDB string `mapstructure:"history_db"`

	// ResultDir overrides where benchmark result files are written.
	// Empty keeps them next to the input file.
	ResultDir string `mapstructure:"result_dir"`

	Log x_log.Config `mapstructure:"log"`
}

func Default() *Config {
	return &Config{
		Variant:   "array",
		Symbols:   "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		Listen:    ":8087",
		HistoryDB: "trie_history.db",
		Log: x_log.Config{
			Level:     "info",
			ToConsole: true,
			Style:     "dark",
		},
	}
}

// Load reads the configuration from path, the TRIE_CONFIG env var or
// ./trie.json, in that order. A missing file silently yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if envPath := os.Getenv(EnvConfigPath); envPath != "" {
			path = envPath
		} else {
			path = defaultPath
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := mapstructure.Decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
