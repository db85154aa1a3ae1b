package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DetectConfigPath searches for a config file.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $BEEGET_CONFIG (explicit path)
// 2. ~/.config/beeget/config.toml
func DetectConfigPath() string {
	if path := os.Getenv("BEEGET_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "beeget", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from the standard paths.
// If no config file is found, returns a config with all default values
// (plus any environment overrides). If a config file is found but fails
// to load or validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies BEEGET_* environment variables over cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BEEGET_RELEASE_OWNER"); v != "" {
		cfg.Release.Owner = v
	}
	if v := os.Getenv("BEEGET_RELEASE_REPO"); v != "" {
		cfg.Release.Repo = v
	}
	if v := os.Getenv("BEEGET_RELEASE_BINARY"); v != "" {
		cfg.Release.Binary = v
	}
	if v := os.Getenv("BEEGET_INSTALL_DIR"); v != "" {
		cfg.Install.Dir = v
	}
	if v := os.Getenv("BEEGET_INSTALL_OS"); v != "" {
		cfg.Install.OS = v
	}
	if v := os.Getenv("BEEGET_INSTALL_ARCH"); v != "" {
		cfg.Install.Arch = v
	}
	if v := os.Getenv("BEEGET_API_ADDR"); v != "" {
		cfg.Node.APIAddr = v
	}
	if v := os.Getenv("BEEGET_READY_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.Node.ReadyTimeoutSeconds = seconds
		}
	}
}
