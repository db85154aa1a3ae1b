// Package testutil provides utilities for testing beeget in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv creates isolated test directories for each test.
// This ensures beeget tests never interfere with:
// - A user's real ~/.local/bin (or %LOCALAPPDATA%\bin) contents
// - The user's actual beeget configuration
//
// The cleanup function is automatically handled by t.TempDir(),
// so callers don't need to manually clean up.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config", "config.toml")
	installDir := filepath.Join(tmpDir, "bin")

	t.Setenv("BEEGET_CONFIG", configPath)
	t.Setenv("BEEGET_INSTALL_DIR", installDir)

	dirs := []string{
		filepath.Join(tmpDir, "config"),
		installDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	// An empty config file keeps loading on the file path while every
	// value stays at its default
	if err := os.WriteFile(configPath, nil, 0o600); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	return tmpDir
}
