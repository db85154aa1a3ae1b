// Package config provides configuration management for beeget.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields. Every value can also be set with a
// BEEGET_* environment variable, and command-line flags override both.
package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration struct for beeget.
type Config struct {
	Release Release `toml:"release"`
	Install Install `toml:"install"`
	Node    Node    `toml:"node"`
}

// Release identifies the release index to install from.
type Release struct {
	// Owner is the GitHub repository owner (default: "ethersphere").
	Owner string `toml:"owner"`

	// Repo is the GitHub repository name (default: "bee").
	Repo string `toml:"repo"`

	// Binary is the executable name inside release assets (default: "bee").
	Binary string `toml:"binary"`
}

// Install contains installation settings.
type Install struct {
	// Dir overrides the conventional destination directory.
	// Empty means resolve per OS convention.
	Dir string `toml:"dir"`

	// OS and Arch override host platform detection. Both must be set
	// together or both left empty.
	OS   string `toml:"os"`
	Arch string `toml:"arch"`
}

// Node contains settings for the fetch-time bee node.
type Node struct {
	// APIAddr is the local bee API address (default: "localhost:1633").
	APIAddr string `toml:"api_addr"`

	// ReadyTimeoutSeconds bounds the wait for the node API (default: 30).
	ReadyTimeoutSeconds int `toml:"ready_timeout_seconds"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Release: Release{
			Owner:  "ethersphere",
			Repo:   "bee",
			Binary: "bee",
		},
		Node: Node{
			APIAddr:             "localhost:1633",
			ReadyTimeoutSeconds: 30,
		},
	}
}

// ReadyTimeout returns the node ready timeout as a duration.
func (c *Config) ReadyTimeout() time.Duration {
	return time.Duration(c.Node.ReadyTimeoutSeconds) * time.Second
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Release.Owner == "" || c.Release.Repo == "" {
		return fmt.Errorf("release.owner and release.repo must not be empty")
	}
	if c.Release.Binary == "" {
		return fmt.Errorf("release.binary must not be empty")
	}
	if (c.Install.OS == "") != (c.Install.Arch == "") {
		return fmt.Errorf("install.os and install.arch must be set together")
	}
	if c.Node.APIAddr == "" {
		return fmt.Errorf("node.api_addr must not be empty")
	}
	if c.Node.ReadyTimeoutSeconds <= 0 {
		return fmt.Errorf("node.ready_timeout_seconds must be positive")
	}
	return nil
}
