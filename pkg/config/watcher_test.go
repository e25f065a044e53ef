package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchConfig_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "system.json", `{"action_timeout_ms": 1000}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloadCh := WatchConfig(ctx, path)

	// Give the watcher a moment to attach before modifying the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"action_timeout_ms": 2000}`), 0644))

	select {
	case _, ok := <-reloadCh:
		require.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a reload signal after the config write")
	}
}

func TestWatchConfig_CancelDuringDebounce(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "system.json", `{"action_timeout_ms": 1000}`)

	ctx, cancel := context.WithCancel(context.Background())
	reloadCh := WatchConfig(ctx, path)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"action_timeout_ms": 2000}`), 0644))

	// Cancel while the change is still being debounced; shutdown must
	// close the channel cleanly instead of signaling (or panicking on a
	// send after close).
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case _, ok := <-reloadCh:
		require.False(t, ok, "channel should close without a signal")
	case <-time.After(5 * time.Second):
		t.Fatal("expected the reload channel to close after cancellation")
	}
}

func TestWatchConfig_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "system.json", `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	reloadCh := WatchConfig(ctx, path)
	cancel()

	select {
	case _, ok := <-reloadCh:
		require.False(t, ok, "channel should close without a signal")
	case <-time.After(5 * time.Second):
		t.Fatal("expected the reload channel to close after cancellation")
	}
}
