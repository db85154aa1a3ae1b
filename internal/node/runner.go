// Package node runs the installed bee executable as a child process for
// the duration of a single fetch and talks to its local HTTP API.
package node

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os/exec"
	"syscall"
	"time"
)

const (
	// DefaultAPIAddr is the local address the bee API listens on.
	DefaultAPIAddr = "localhost:1633"
	// DefaultReadyTimeout bounds how long we wait for the API port.
	DefaultReadyTimeout = 30 * time.Second

	readyPollInterval = time.Second
	dialTimeout       = time.Second
	stopGracePeriod   = 5 * time.Second
)

// Runner starts and stops a bee node child process.
//
// The node runs in ultra-light mode: no swap, no full node, no blockchain
// endpoint. That is enough to retrieve public content and avoids any
// chain configuration.
type Runner struct {
	binPath  string
	apiAddr  string
	password string
	logger   *slog.Logger

	cmd    *exec.Cmd
	cancel context.CancelFunc
}

// NewRunner creates a runner for the bee executable at binPath.
func NewRunner(binPath, apiAddr string, logger *slog.Logger) *Runner {
	if apiAddr == "" {
		apiAddr = DefaultAPIAddr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		binPath:  binPath,
		apiAddr:  apiAddr,
		password: "beeget",
		logger:   logger,
	}
}

// APIAddr returns the node API address.
func (r *Runner) APIAddr() string {
	return r.apiAddr
}

// Start launches the node process. The process is terminated when Stop is
// called or when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) error {
	if r.cmd != nil {
		return fmt.Errorf("node already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(runCtx, r.binPath, "start",
		"--swap-enable=false",
		"--full-node=false",
		"--blockchain-rpc-endpoint=",
		"--password="+r.password,
	)
	// Node output is noise for a one-shot fetch
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("start node: %w", err)
	}

	r.cmd = cmd
	r.cancel = cancel
	r.logger.Info("node started", "pid", cmd.Process.Pid, "api", r.apiAddr)
	return nil
}

// WaitReady polls the API port until it accepts a TCP connection, the
// timeout elapses, or ctx is cancelled.
func (r *Runner) WaitReady(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultReadyTimeout
	}

	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("tcp", r.apiAddr, dialTimeout)
		if err == nil {
			conn.Close()
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("node API %s not reachable after %s", r.apiAddr, timeout)
		}

		select {
		case <-time.After(readyPollInterval):
		case <-ctx.Done():
			return fmt.Errorf("waiting for node API: %w", ctx.Err())
		}
	}
}

// Stop terminates the node process and waits for it to exit. It asks
// politely with SIGTERM first and falls back to a kill via the command
// context after a grace period.
func (r *Runner) Stop() {
	if r.cmd == nil {
		return
	}

	// Signal is unsupported on Windows; the context kill below covers it
	_ = r.cmd.Process.Signal(syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		r.cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopGracePeriod):
		r.cancel()
		<-done
	}
	r.cancel()

	r.logger.Info("node stopped")
	r.cmd = nil
	r.cancel = nil
}
