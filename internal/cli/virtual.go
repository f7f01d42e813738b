package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/uinput"
)

type Virtual struct {
	Name    string `help:"Display name of the virtual device" default:"evkit virtual device"`
	Bus     uint16 `help:"Bus type of the virtual device identity" default:"6"`
	Vendor  uint16 `help:"Vendor id of the virtual device identity" default:"0x1d6b"`
	Product uint16 `help:"Product id of the virtual device identity" default:"0x0104"`
	Version uint16 `help:"Version of the virtual device identity" default:"1"`

	Keys     []string      `help:"Key capabilities to declare (names, e.g. A,Space,PadSouth)"`
	RelAxes  []string      `help:"Relative axis capabilities to declare (names, e.g. X,Y,Wheel)" name:"rel-axes"`
	AbsAxes  []string      `help:"Absolute axis capabilities as NAME=min:max (e.g. X=0:255)" name:"abs-axes"`
	Rumble   bool          `help:"Declare rumble force-feedback support and serve upload/erase requests"`
	PathWait time.Duration `help:"How long to wait for the /dev/input node to appear" default:"2s"`
}

// Run is called by Kong when the virtual command is executed. It creates the
// device, reports its resolved event node and serves the force feedback
// request stream until interrupted, finalizing every transaction guard before
// the next poll.
func (c *Virtual) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bits, err := c.eventBits()
	if err != nil {
		return err
	}

	id := input.DeviceID{
		Bus:     input.Bus(c.Bus),
		Vendor:  c.Vendor,
		Product: c.Product,
		Version: c.Version,
	}
	dev, err := uinput.Create(id, c.Name, bits)
	if err != nil {
		return err
	}
	defer dev.Close()

	path, err := dev.WaitForPath(c.PathWait)
	if err != nil {
		logger.Warn("could not resolve the device node", "error", err)
	} else {
		logger.Info("Virtual device created", "name", c.Name, "path", path)
	}

	if !c.Rumble {
		logger.Info("No force feedback declared; waiting for interrupt")
		<-ctx.Done()
		return nil
	}

	logger.Info("Serving force feedback requests")
	for {
		if ctx.Err() != nil {
			return nil
		}
		req, ok, err := dev.PollForceFeedback(pollInterval)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := c.handleRequest(logger, req); err != nil {
			return err
		}
	}
}

func (c *Virtual) handleRequest(logger *slog.Logger, req uinput.ForceFeedbackRequest) error {
	switch req := req.(type) {
	case *uinput.EffectUpload:
		// Finalize before the next poll; a second outstanding guard
		// would leave the kernel blocked.
		defer req.Close()
		effect, err := req.Effect()
		if err != nil {
			logger.Warn("upload with undecodable effect", "id", int16(req.EffectID()), "error", err)
			return req.Complete()
		}
		logger.Info("Effect uploaded", "id", int16(effect.ID),
			"kind", fmt.Sprintf("%T", effect.Kind), "duration", effect.Duration.String())
		return req.Complete()
	case *uinput.EffectErase:
		defer req.Close()
		logger.Info("Effect erased", "id", int16(req.EffectID()))
		return req.Complete()
	case uinput.EffectEnable:
		logger.Info("Effect enabled", "id", int16(req.EffectID), "cycles", req.CycleCount)
	case uinput.EffectDisable:
		logger.Info("Effect disabled", "id", int16(req.EffectID))
	case uinput.OtherRequest:
		logger.Debug("Unmodeled force feedback request", "code", req.Code, "value", req.Value)
	}
	return nil
}

func (c *Virtual) eventBits() ([]input.EventBit, error) {
	var bits []input.EventBit
	for _, name := range c.Keys {
		key, ok := input.KeyByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown key name %q", name)
		}
		bits = append(bits, input.KeyBit{Key: key})
	}
	for _, name := range c.RelAxes {
		axis, ok := input.RelativeAxisByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown relative axis name %q", name)
		}
		bits = append(bits, input.RelativeAxisBit{Axis: axis})
	}
	for _, spec := range c.AbsAxes {
		bit, err := parseAbsAxis(spec)
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}
	if c.Rumble {
		bits = append(bits, input.ForceFeedbackBit{Effect: input.ForceFeedbackRumble})
	}
	return bits, nil
}

// parseAbsAxis parses a NAME=min:max axis declaration.
func parseAbsAxis(spec string) (input.AbsoluteAxisBit, error) {
	var bit input.AbsoluteAxisBit

	name, bounds, ok := strings.Cut(spec, "=")
	if !ok {
		return bit, fmt.Errorf("absolute axis %q: expected NAME=min:max", spec)
	}
	axis, ok := input.AbsoluteAxisByName(name)
	if !ok {
		return bit, fmt.Errorf("unknown absolute axis name %q", name)
	}
	minStr, maxStr, ok := strings.Cut(bounds, ":")
	if !ok {
		return bit, fmt.Errorf("absolute axis %q: expected NAME=min:max", spec)
	}
	minVal, err := strconv.ParseInt(minStr, 10, 32)
	if err != nil {
		return bit, fmt.Errorf("absolute axis %q: %w", spec, err)
	}
	maxVal, err := strconv.ParseInt(maxStr, 10, 32)
	if err != nil {
		return bit, fmt.Errorf("absolute axis %q: %w", spec, err)
	}

	bit = input.AbsoluteAxisBit{Axis: axis, Minimum: int32(minVal), Maximum: int32(maxVal)}
	if err := bit.Validate(); err != nil {
		return bit, err
	}
	return bit, nil
}
