package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hivetool/beeget/internal/binary"
	"github.com/hivetool/beeget/internal/config"
	"github.com/hivetool/beeget/internal/logging"
	"github.com/hivetool/beeget/internal/node"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	var (
		apiAddr string
		timeout time.Duration
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "get <reference>",
		Short: "Fetch content from Swarm by reference",
		Long: `Fetch the content addressed by a Swarm reference through a locally
spawned Bee node.

The Bee binary is installed first if it is missing. The node runs in
ultra-light mode only for the duration of the fetch and is terminated
once the content is on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := logging.New(verbose)
			ctx := cmd.Context()
			reference := args[0]

			cfg, err := config.LoadWithDefaults()
			if err != nil {
				return err
			}
			if apiAddr == "" {
				apiAddr = cfg.Node.APIAddr
			}
			if timeout <= 0 {
				timeout = cfg.ReadyTimeout()
			}
			if outDir == "" {
				outDir, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("resolve working directory: %w", err)
				}
			}

			// Ensure the bee binary is present; install it if not.
			info, err := detectPlatform(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				return binary.NewError(binary.KindUnsupportedPlatform, "platform detection", err)
			}

			opts := binary.Options{
				Platform:   info,
				DestDir:    cfg.Install.Dir,
				Owner:      cfg.Release.Owner,
				Repo:       cfg.Release.Repo,
				BinaryName: cfg.Release.Binary,
			}

			binPath, err := ensureInstalled(ctx, opts, logger)
			if err != nil {
				return err
			}

			runner := node.NewRunner(binPath, apiAddr, logger)
			if err := runner.Start(ctx); err != nil {
				return err
			}
			defer runner.Stop()

			logger.Info("waiting for node API", "addr", apiAddr, "timeout", timeout)
			if err := runner.WaitReady(ctx, timeout); err != nil {
				return err
			}

			gateway := node.NewGateway(runner.APIAddr())
			path, err := gateway.Fetch(ctx, reference, outDir)
			if err != nil {
				return err
			}

			fmt.Printf("Downloaded file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiAddr, "api-addr", "", "bee API address (default localhost:1633)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "how long to wait for the node API (default 30s)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write the fetched file into (default current directory)")

	return cmd
}

// ensureInstalled returns the path of the installed bee executable,
// installing it first when absent.
func ensureInstalled(ctx context.Context, opts binary.Options, logger *slog.Logger) (string, error) {
	destDir := opts.DestDir
	if destDir == "" {
		var err error
		destDir, err = binary.DefaultDestDir()
		if err != nil {
			return "", binary.NewError(binary.KindFilesystemError, "resolve destination directory", err)
		}
	}

	name := opts.BinaryName
	if name == "" {
		name = binary.DefaultBinaryName
	}
	name += opts.Platform.ExeSuffix()

	installer := binary.NewInstaller(destDir)
	installed, err := installer.IsInstalled(name)
	if err != nil {
		return "", binary.NewError(binary.KindFilesystemError, "check existing install", err)
	}
	if installed {
		return installer.Path(name), nil
	}

	result, err := runInstall(ctx, opts, logger)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}
