/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/okreppe/hoard/pkg/store"
)

// Config represents the hoard configuration
type Config struct {
	RootDir    string `yaml:"root_dir"`
	Namespace  string `yaml:"namespace"`
	DirMode    uint32 `yaml:"dir_mode"`
	MapSizeMB  int64  `yaml:"map_size_mb"`
	MaxReaders int    `yaml:"max_readers"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		RootDir:   "./data",
		Namespace: "default",
		DirMode:   0775,
		MapSizeMB: 1024,
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// StoreOptions converts the configuration into driver options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		RootDir:    c.RootDir,
		Namespace:  c.Namespace,
		DirMode:    os.FileMode(c.DirMode),
		MapSize:    c.MapSizeMB << 20,
		MaxReaders: c.MaxReaders,
	}
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./hoard.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "hoard")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
