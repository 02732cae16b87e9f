package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat garage configuration
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path"`
	PhotoDir     string `json:"photo_dir"`
	LogLevel     string `json:"log_level,omitempty"` // zap level name, defaults to "warn"
}

// Default returns a configuration rooted at ~/.garage.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	garageDir := filepath.Join(home, ".garage")
	return &Config{
		Version:      "1",
		DatabasePath: filepath.Join(garageDir, "garage.db"),
		PhotoDir:     filepath.Join(garageDir, "photos"),
		LogLevel:     "warn",
	}, nil
}

// LoadConfig reads .garage/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".garage", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	garageDir := filepath.Join(dir, ".garage")
	if err := os.MkdirAll(garageDir, 0755); err != nil {
		return fmt.Errorf("failed to create .garage dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(garageDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
