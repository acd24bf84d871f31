package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:      "info",
	LogFile:    "logs/trie.log",
	ToConsole:  true,
	ToFile:     false,
	Style:      "dark",
	MaxSize:    10, // MB
	MaxBackups: 5,  // rotated files
	MaxAge:     7,  // days
	Compress:   true,
}

// Config controls log level, destinations and rotation.
type Config struct {
	Level      string
	LogFile    string
	ToConsole  bool
	ToFile     bool
	Style      string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Missing file means defaults
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
