package cli

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/log"
	"github.com/evkit/evkit/internal/stream"
)

// blockingSource parks every Read for the full timeout, like a quiet device.
type blockingSource struct {
	closed atomic.Bool
}

func (s *blockingSource) Read(timeout time.Duration) (input.Event, bool, error) {
	if s.closed.Load() {
		panic("read after close")
	}
	time.Sleep(timeout)
	return input.Event{}, false, nil
}

func TestPumpStopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := stream.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer hub.Close()

	src := &blockingSource{}
	done := make(chan error, 1)
	var serve Serve
	go func() {
		done <- serve.pump(ctx, src, hub, log.NewRecorder(nil))
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * pollInterval):
		t.Fatal("pump did not stop after cancellation")
	}

	// The caller tears the device down only once the pump has returned, so
	// no read may still be in flight. Marking the source closed now would
	// trip the panic in Read if one were.
	src.closed.Store(true)
	time.Sleep(2 * pollInterval)
}

func TestPumpBroadcastsDecodedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := stream.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer hub.Close()

	events := make(chan input.Event, 1)
	events <- input.Event{Body: input.KeyPress{Key: input.KeyA}}
	src := &scriptedSource{events: events, cancel: cancel}

	var serve Serve
	err := serve.pump(ctx, src, hub, log.NewRecorder(nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, src.reads)
}

// scriptedSource serves queued events, then cancels the pump.
type scriptedSource struct {
	events chan input.Event
	cancel context.CancelFunc
	reads  int
}

func (s *scriptedSource) Read(time.Duration) (input.Event, bool, error) {
	select {
	case ev := <-s.events:
		s.reads++
		return ev, true, nil
	default:
		s.cancel()
		return input.Event{}, false, nil
	}
}
