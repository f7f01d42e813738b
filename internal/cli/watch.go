package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evkit/evkit/evdev"
	"github.com/evkit/evkit/internal/log"
)

// pollInterval bounds each blocking read so interrupts stay responsive.
const pollInterval = 250 * time.Millisecond

type Watch struct {
	Device string `arg:"" help:"Input device path (/dev/input/eventN)"`
	Grab   bool   `help:"Grab the device for exclusive access while watching"`
	JSON   bool   `help:"Print events as JSON lines instead of the table format"`
}

// Run is called by Kong when the watch command is executed.
func (c *Watch) Run(logger *slog.Logger, recorder log.RawRecorder) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := evdev.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	if c.Grab {
		if err := dev.Grab(); err != nil {
			return err
		}
		defer func() {
			if err := dev.Release(); err != nil {
				logger.Warn("release failed", "error", err)
			}
		}()
		logger.Info("Grabbed device for exclusive access", "device", c.Device)
	}

	if name, err := dev.Name(); err == nil {
		logger.Info("Watching device", "device", c.Device, "name", name)
	}

	enc := json.NewEncoder(os.Stdout)
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

		if c.JSON {
			if err := enc.Encode(NewEventView(ev)); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%14.6f  %s\n", ev.Time.Seconds(), formatBody(ev.Body))
	}
}
