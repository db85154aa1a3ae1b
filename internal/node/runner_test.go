package node

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitReadySucceedsWhenListening(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	r := NewRunner("/nonexistent/bee", listener.Addr().String(), nil)
	assert.NoError(t, r.WaitReady(context.Background(), 5*time.Second))
}

func TestWaitReadyTimesOut(t *testing.T) {
	// Reserve a port, then close it so nothing is listening there.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	r := NewRunner("/nonexistent/bee", addr, nil)
	err = r.WaitReady(context.Background(), 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestWaitReadyCancelled(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	r := NewRunner("/nonexistent/bee", addr, nil)
	err = r.WaitReady(ctx, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartMissingBinary(t *testing.T) {
	r := NewRunner("/nonexistent/bee", DefaultAPIAddr, nil)
	err := r.Start(context.Background())
	require.Error(t, err)
}

func TestStopWithoutStart(t *testing.T) {
	r := NewRunner("/nonexistent/bee", DefaultAPIAddr, nil)
	// Must not panic
	r.Stop()
}
