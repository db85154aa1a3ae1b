package binary

import (
	"time"

	"github.com/hivetool/beeget/internal/platform"
)

// DefaultBinaryName is the executable beeget manages.
const DefaultBinaryName = "bee"

// Options configures an install operation.
type Options struct {
	// Platform is the target platform. Required.
	Platform *platform.Info
	// DestDir overrides the conventional destination directory.
	DestDir string
	// Owner and Repo identify the GitHub repository to install from.
	// Default: ethersphere/bee.
	Owner string
	Repo  string
	// BinaryName is the installed executable name (plus .exe on Windows).
	// Default: bee.
	BinaryName string
}

// Result describes a completed install.
type Result struct {
	Version  string // release tag, e.g. "v2.4.0"
	Path     string // installed executable path
	Asset    string // release asset name that was downloaded
	Duration time.Duration
}
