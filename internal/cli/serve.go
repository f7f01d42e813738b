package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"

	"github.com/evkit/evkit/evdev"
	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/log"
	"github.com/evkit/evkit/internal/stream"
)

type Serve struct {
	Device string `arg:"" help:"Input device path (/dev/input/eventN)"`
	Addr   string `help:"HTTP listen address" default:"127.0.0.1:8137" env:"EVKIT_SERVE_ADDR"`
	Open   bool   `help:"Open the live viewer in the default browser"`
}

// Run is called by Kong when the serve command is executed.
func (c *Serve) Run(logger *slog.Logger, recorder log.RawRecorder) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := evdev.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	hub := stream.NewHub(logger)
	defer hub.Close()

	srv := &http.Server{Addr: c.Addr, Handler: hub.Handler()}
	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.ListenAndServe()
	}()
	logger.Info("Serving live events", "device", c.Device, "addr", c.Addr)

	if c.Open {
		if err := browser.OpenURL(fmt.Sprintf("http://%s/", c.Addr)); err != nil {
			logger.Warn("could not open browser", "error", err)
		}
	}

	pumpCtx, stopPump := context.WithCancel(ctx)
	defer stopPump()
	readErrCh := make(chan error, 1)
	go func() {
		readErrCh <- c.pump(pumpCtx, dev, hub, recorder)
	}()

	var runErr error
	pumpDone := false
	select {
	case <-ctx.Done():
	case runErr = <-readErrCh:
		pumpDone = true
	case err := <-srvErrCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	logger.Info("Shutting down")
	// The pump must finish its last read before the deferred Close tears
	// the device fd down.
	stopPump()
	if !pumpDone {
		if err := <-readErrCh; runErr == nil {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	return runErr
}

// eventSource is the read side of an open device the pump drains.
type eventSource interface {
	Read(timeout time.Duration) (input.Event, bool, error)
}

func (c *Serve) pump(ctx context.Context, dev eventSource, hub *stream.Hub, recorder log.RawRecorder) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev, ok, err := dev.Read(pollInterval)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		recorder.Record("read", ev.Raw())
		hub.Broadcast(NewEventView(ev))
	}
}
