package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evkit/evkit/evdev"
	"github.com/evkit/evkit/input"
)

type Rumble struct {
	Device string        `arg:"" help:"Input device path (/dev/input/eventN)"`
	Strong uint16        `help:"Strong (heavy) motor magnitude" default:"32768"`
	Weak   uint16        `help:"Weak (light) motor magnitude" default:"32768"`
	Length time.Duration `help:"Play length per cycle" default:"1s"`
	Cycles int32         `help:"Number of playback cycles" default:"1"`
}

// Run is called by Kong when the rumble command is executed. It drives the
// full effect lifecycle against real hardware: upload, enable, wait, disable,
// erase.
func (c *Rumble) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := evdev.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	id, err := dev.UploadEffect(input.ForceFeedbackEffect{
		Kind: input.Rumble{
			StrongMagnitude: c.Strong,
			WeakMagnitude:   c.Weak,
		},
		Duration: input.FiniteDuration(c.Length),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.EraseEffect(id); err != nil {
			logger.Warn("erase failed", "id", int16(id), "error", err)
		}
	}()

	logger.Info("Playing rumble effect", "id", int16(id),
		"strong", c.Strong, "weak", c.Weak, "length", c.Length, "cycles", c.Cycles)
	if err := dev.EnableEffect(id, c.Cycles); err != nil {
		return err
	}
	if err := dev.Emit(input.Flush{}); err != nil {
		return err
	}

	select {
	case <-time.After(c.Length * time.Duration(c.Cycles)):
	case <-ctx.Done():
		logger.Info("Interrupted, stopping effect early")
	}

	if err := dev.DisableEffect(id); err != nil {
		return err
	}
	return dev.Emit(input.Flush{})
}
