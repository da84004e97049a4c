// Package config manages the application configuration stored at
// ~/.caseforge/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	DefaultFormat string `json:"default_format"` // jest, playwright, or cypress
	ColorOutput   bool   `json:"color_output"`
}

// configDir returns the config directory, creating it when missing.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".caseforge")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load loads the configuration from disk. A missing file yields the
// defaults rather than an error.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{DefaultFormat: "jest", ColorOutput: true}, nil
		}
		return nil, err
	}

	config := Config{DefaultFormat: "jest", ColorOutput: true}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.DefaultFormat == "" {
		config.DefaultFormat = "jest"
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetEnvVarName returns the environment variable name for a config key.
func GetEnvVarName(key string) string {
	return "CASEFORGE_" + strings.ToUpper(key)
}

// GetEnv retrieves an environment variable with the Caseforge prefix.
func GetEnv(key string) string {
	return os.Getenv(GetEnvVarName(key))
}
