package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hivetool/beeget/internal/binary"
)

// Version will be set at build time via -ldflags
var Version = "dev"

func main() {
	// Derive a context that is canceled on interrupt so the one
	// outstanding download (or the node wait) can be aborted cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "beeget",
		Short: "Install the Swarm Bee binary and fetch content through it",
		Long: `beeget installs the latest Bee release binary for this machine into the
conventional per-user bin directory, and can fetch content from the Swarm
network by reference through a locally spawned node.

Exit codes:
  0 - Success
  1 - Generic error
  2 - Unsupported platform
  3 - Network failure
  4 - Archive error
  5 - Filesystem error`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewInstallCommand())
	rootCmd.AddCommand(NewGetCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(binary.KindOf(err).ExitCode())
	}
}
