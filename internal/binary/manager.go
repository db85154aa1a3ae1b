package binary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hivetool/beeget/internal/platform"
	"github.com/hivetool/beeget/internal/release"
)

// Manager orchestrates the install pipeline: resolve the latest release,
// download the matching asset, extract the executable, install it.
// Every failure carries the Kind of the stage that produced it.
type Manager struct {
	releases   *release.Client
	downloader *Downloader
	extractor  *Extractor
	logger     *slog.Logger
}

// NewManager creates a manager for the repository named in opts.
func NewManager(opts Options, logger *slog.Logger) (*Manager, error) {
	if opts.Platform == nil {
		return nil, fmt.Errorf("platform is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	owner, repo := opts.Owner, opts.Repo
	if owner == "" {
		owner = "ethersphere"
	}
	if repo == "" {
		repo = "bee"
	}

	return &Manager{
		releases:   release.NewClient(owner, repo),
		downloader: NewDownloader(),
		extractor:  NewExtractor(),
		logger:     logger,
	}, nil
}

// Releases exposes the release client (useful for testing).
func (m *Manager) Releases() *release.Client {
	return m.releases
}

// Install runs the full pipeline and returns the installed path. All
// temporary download and extraction artifacts live in one scratch
// directory that is removed on every exit path.
func (m *Manager) Install(ctx context.Context, opts Options) (*Result, error) {
	startTime := time.Now()

	if opts.Platform == nil {
		return nil, NewError(KindUnsupportedPlatform, "no platform detected", nil)
	}
	if !platform.Supported(opts.Platform.OS, opts.Platform.Arch) {
		return nil, NewError(KindUnsupportedPlatform,
			fmt.Sprintf("no published binary for %s", opts.Platform.Key()), nil)
	}

	binaryName := opts.BinaryName
	if binaryName == "" {
		binaryName = DefaultBinaryName
	}

	destDir := opts.DestDir
	if destDir == "" {
		var err error
		destDir, err = DefaultDestDir()
		if err != nil {
			return nil, NewError(KindFilesystemError, "resolve destination directory", err)
		}
	}

	logArgs := []any{
		"repo", m.releases.Owner + "/" + m.releases.Repo,
		"platform", opts.Platform.Key(),
	}
	if opts.Platform.IsLinux() && opts.Platform.Platform != "" {
		logArgs = append(logArgs,
			"distro", opts.Platform.Platform,
			"family", opts.Platform.Family,
			"version", opts.Platform.Version)
	}
	m.logger.Info("resolving latest release", logArgs...)

	rel, err := m.releases.Latest(ctx)
	if err != nil {
		return nil, NewError(KindNetworkFailure, "query release index", err)
	}

	asset, err := rel.AssetFor(opts.Platform, binaryName)
	if err != nil {
		// The platform is in the supported set but the release dropped
		// its build; surface it as the platform's problem, not the net's
		return nil, NewError(KindUnsupportedPlatform, "select release asset", err)
	}

	scratchDir, err := os.MkdirTemp("", "beeget-*")
	if err != nil {
		return nil, NewError(KindFilesystemError, "create scratch directory", err)
	}
	defer os.RemoveAll(scratchDir)

	m.logger.Info("downloading", "asset", asset.Name, "version", rel.TagName, "size", asset.Size)

	assetPath := filepath.Join(scratchDir, asset.Name)
	if err := m.downloader.DownloadToFile(ctx, asset.BrowserDownloadURL, assetPath); err != nil {
		return nil, NewError(KindNetworkFailure, "download asset", err)
	}

	exePath, err := m.extractor.Extract(assetPath, scratchDir)
	if err != nil {
		return nil, NewError(KindArchiveError, "extract executable", err)
	}

	installer := NewInstaller(destDir)
	installedName := binaryName + opts.Platform.ExeSuffix()
	installedPath, err := installer.Install(exePath, installedName)
	if err != nil {
		return nil, NewError(KindFilesystemError, "install executable", err)
	}

	m.logger.Info("installed", "path", installedPath, "version", rel.TagName)

	return &Result{
		Version:  rel.TagName,
		Path:     installedPath,
		Asset:    asset.Name,
		Duration: time.Since(startTime),
	}, nil
}
