package binary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hivetool/beeget/internal/transaction"
)

// DestDir resolves the conventional per-user binary directory for an OS.
//
// It is a pure function of (OS, environment, home) so destination policy
// is testable without touching the real filesystem:
//
//	linux, darwin  <home>/.local/bin
//	windows        %LOCALAPPDATA%\bin, else <home>\AppData\Local\bin
func DestDir(goos string, env func(string) string, home string) (string, error) {
	if home == "" {
		return "", fmt.Errorf("home directory is required")
	}

	switch goos {
	case "linux", "darwin":
		return filepath.Join(home, ".local", "bin"), nil
	case "windows":
		if local := env("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "bin"), nil
		}
		return filepath.Join(home, "AppData", "Local", "bin"), nil
	default:
		return "", fmt.Errorf("no destination convention for OS: %s", goos)
	}
}

// DefaultDestDir resolves the destination directory for the current host.
func DefaultDestDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return DestDir(runtime.GOOS, os.Getenv, home)
}

// Installer places an extracted executable into the destination directory.
type Installer struct {
	destDir string
}

// NewInstaller creates an installer for destDir.
func NewInstaller(destDir string) *Installer {
	return &Installer{destDir: destDir}
}

// Install copies srcPath into the destination directory as name, creating
// the directory if absent and overwriting any previous install. The copy
// goes through a temp file in the destination directory so a crash never
// leaves a truncated binary behind. A lock file serializes concurrent
// invocations against the same destination.
func (i *Installer) Install(srcPath, name string) (string, error) {
	if err := os.MkdirAll(i.destDir, 0755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	lock, err := transaction.AcquireLock(i.destDir)
	if err != nil {
		return "", fmt.Errorf("acquire install lock: %w", err)
	}
	defer lock.Release()

	destPath := filepath.Join(i.destDir, name)

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	tmpPath := destPath + ".partial"
	tmpFile, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", fmt.Errorf("copy binary: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	// os.Rename replaces an existing file, which gives idempotent installs
	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("rename into place: %w", err)
	}
	cleanupNeeded = false

	if err := SetExecutable(destPath); err != nil {
		return "", err
	}

	return destPath, nil
}

// SetExecutable sets executable permissions on a file. No-op on Windows,
// where the mode bits carry no execute semantics.
func SetExecutable(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}

// IsInstalled checks whether an executable named name is present in destDir.
func (i *Installer) IsInstalled(name string) (bool, error) {
	info, err := os.Stat(filepath.Join(i.destDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		return false, nil
	}

	return true, nil
}

// Path returns the filesystem path an executable named name installs to.
func (i *Installer) Path(name string) string {
	return filepath.Join(i.destDir, name)
}
