package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hivetool/beeget/internal/binary"
	"github.com/hivetool/beeget/internal/config"
	"github.com/hivetool/beeget/internal/logging"
	"github.com/hivetool/beeget/internal/platform"
)

// NewInstallCommand creates the install command.
func NewInstallCommand() *cobra.Command {
	var (
		osOverride   string
		archOverride string
		destDir      string
		repo         string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download and install the latest Bee binary",
		Long: `Detect the host platform, resolve the newest published Bee release,
download the matching binary, and install it into the conventional
per-user bin directory (~/.local/bin, or %LOCALAPPDATA%\bin on Windows).

Re-running after a successful install overwrites the existing binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := logging.New(verbose)

			opts, err := buildInstallOptions(cmd.Context(), osOverride, archOverride, destDir, repo)
			if err != nil {
				return err
			}

			result, err := runInstall(cmd.Context(), opts, logger)
			if err != nil {
				return err
			}

			fmt.Printf("Installed %s %s to %s (%s)\n",
				result.Asset, result.Version, result.Path, result.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&osOverride, "os", "", "target OS instead of the detected one (linux, darwin, windows)")
	cmd.Flags().StringVar(&archOverride, "arch", "", "target architecture instead of the detected one (amd64, arm64)")
	cmd.Flags().StringVar(&destDir, "dest", "", "destination directory instead of the per-user convention")
	cmd.Flags().StringVar(&repo, "repo", "", "GitHub repository to install from, as owner/name")

	return cmd
}

// detectPlatform is the host detection entry point, swapped in tests.
var detectPlatform = func(ctx context.Context) (*platform.Info, error) {
	return platform.NewDetector().Detect(ctx)
}

// buildInstallOptions merges config file, environment, and flags into the
// install options. Flags win over environment, environment over file.
func buildInstallOptions(ctx context.Context, osOverride, archOverride, destDir, repo string) (binary.Options, error) {
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		return binary.Options{}, err
	}

	if osOverride == "" {
		osOverride = cfg.Install.OS
	}
	if archOverride == "" {
		archOverride = cfg.Install.Arch
	}
	if destDir == "" {
		destDir = cfg.Install.Dir
	}

	owner, repoName := cfg.Release.Owner, cfg.Release.Repo
	if repo != "" {
		owner, repoName, err = splitRepo(repo)
		if err != nil {
			return binary.Options{}, err
		}
	}

	var info *platform.Info
	if osOverride != "" || archOverride != "" {
		if osOverride == "" || archOverride == "" {
			return binary.Options{}, fmt.Errorf("--os and --arch must be used together")
		}
		info, err = platform.Override(osOverride, archOverride)
		if err != nil {
			return binary.Options{}, binary.NewError(binary.KindUnsupportedPlatform, "platform override", err)
		}
	} else {
		info, err = detectPlatform(ctx)
		if err != nil {
			// A cancelled context is not a platform problem; leave it
			// unclassified so the CLI exits with the generic code.
			if ctx.Err() != nil {
				return binary.Options{}, err
			}
			return binary.Options{}, binary.NewError(binary.KindUnsupportedPlatform, "platform detection", err)
		}
	}

	return binary.Options{
		Platform:   info,
		DestDir:    destDir,
		Owner:      owner,
		Repo:       repoName,
		BinaryName: cfg.Release.Binary,
	}, nil
}

func runInstall(ctx context.Context, opts binary.Options, logger *slog.Logger) (*binary.Result, error) {
	mgr, err := binary.NewManager(opts, logger)
	if err != nil {
		return nil, err
	}
	return mgr.Install(ctx, opts)
}

// splitRepo parses an "owner/name" repository reference. Exactly one
// separator is allowed; anything else would produce a malformed release
// index URL.
func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/name", repo)
	}
	return owner, name, nil
}
