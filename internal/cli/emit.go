package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/evkit/evkit/evdev"
	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/log"
)

type Emit struct {
	Device string `arg:"" help:"Input device path (/dev/input/eventN)"`

	Key  string        `help:"Key name to press and release (e.g. KeyA, Space, MouseLeft)" xor:"event"`
	Hold time.Duration `help:"How long to hold the key down" default:"25ms"`

	Kind    uint16 `help:"Raw event kind for a custom event" xor:"event"`
	Code    uint16 `help:"Raw event code for a custom event"`
	Value   int32  `help:"Raw event value for a custom event"`
	NoFlush bool   `help:"Skip the trailing flush marker (kernel keeps the event buffered)"`
}

// Run is called by Kong when the emit command is executed.
func (c *Emit) Run(logger *slog.Logger, recorder log.RawRecorder) error {
	dev, err := evdev.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	if c.Key != "" {
		key, ok := input.KeyByName(c.Key)
		if !ok {
			return fmt.Errorf("unknown key name %q", c.Key)
		}
		logger.Info("Emitting key", "key", key.String(), "hold", c.Hold)
		if err := c.emit(dev, recorder, input.KeyPress{Key: key}); err != nil {
			return err
		}
		if err := c.flush(dev, recorder); err != nil {
			return err
		}
		time.Sleep(c.Hold)
		if err := c.emit(dev, recorder, input.KeyRelease{Key: key}); err != nil {
			return err
		}
		return c.flush(dev, recorder)
	}

	body := input.Other{Kind: input.EventKind(c.Kind), Code: c.Code, Value: c.Value}
	logger.Info("Emitting raw event", "kind", body.Kind.String(), "code", body.Code, "value", body.Value)
	if err := c.emit(dev, recorder, body); err != nil {
		return err
	}
	return c.flush(dev, recorder)
}

func (c *Emit) emit(dev *evdev.Device, recorder log.RawRecorder, body input.EventBody) error {
	recorder.Record("emit", input.RawEventOf(body))
	return dev.Emit(body)
}

func (c *Emit) flush(dev *evdev.Device, recorder log.RawRecorder) error {
	if c.NoFlush {
		return nil
	}
	return c.emit(dev, recorder, input.Flush{})
}
