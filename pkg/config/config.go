/*
Package config manages TOML config for iconserve services.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
}

// SearchConfig has ranking pipeline options.
type SearchConfig struct {
	DefaultLimit int     `toml:"default_limit"`
	MinScore     float64 `toml:"min_score"`
}

// SuggestConfig holds autocomplete options.
type SuggestConfig struct {
	DefaultLimit int     `toml:"default_limit"`
	MinScore     float64 `toml:"min_score"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MinQuery     int  `toml:"min_query"`
	MaxQuery     int  `toml:"max_query"`
	EnableFilter bool `toml:"enable_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			DefaultLimit: 20,
			MinScore:     0.1,
		},
		Suggest: SuggestConfig{
			DefaultLimit: 10,
			MinScore:     0.05,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			MinQuery:     1,
			MaxQuery:     60,
			EnableFilter: true,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
// Any failure falls back to built-in defaults rather than erroring out.
func InitConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", configPath, err)
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", configPath, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
