// Package cli implements the evkit subcommands. Commands receive their
// dependencies through Kong bindings and write human-facing output to stdout,
// keeping the library packages free of any presentation concerns.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/evdev"
	"github.com/evkit/evkit/input"
)

type Info struct {
	Device string `arg:"" help:"Input device path (/dev/input/eventN)"`
}

// Run is called by Kong when the info command is executed.
func (c *Info) Run(logger *slog.Logger) error {
	dev, err := evdev.Open(c.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	id, err := dev.ID()
	if err != nil {
		return err
	}
	name, err := dev.Name()
	if err != nil {
		return err
	}

	fmt.Printf("Device:   %s\n", c.Device)
	fmt.Printf("Name:     %q\n", name)
	fmt.Printf("Identity: %s\n", id)

	if version, err := dev.DriverVersion(); err == nil {
		fmt.Printf("Driver:   %d.%d.%d\n", version>>16, (version>>8)&0xff, version&0xff)
	}
	if phys, err := dev.PhysicalLocation(); err == nil && phys != "" {
		fmt.Printf("Location: %s\n", phys)
	}
	if uniq, err := dev.UniqueID(); err == nil && uniq != "" {
		fmt.Printf("Unique:   %s\n", uniq)
	}

	bits, err := dev.EventBits()
	if err != nil {
		return err
	}
	fmt.Println("Capabilities:")
	for _, bit := range bits {
		switch bit := bit.(type) {
		case input.KeyBit:
			fmt.Printf("  key %s (%d)\n", bit.Key, uint16(bit.Key))
		case input.RelativeAxisBit:
			fmt.Printf("  rel %s (%d)\n", bit.Axis, uint16(bit.Axis))
		case input.AbsoluteAxisBit:
			fmt.Printf("  abs %s (%d) value=%d min=%d max=%d fuzz=%d flat=%d resolution=%d\n",
				bit.Axis, uint16(bit.Axis), bit.InitialValue, bit.Minimum, bit.Maximum,
				bit.NoiseThreshold, bit.Deadzone, bit.Resolution)
		}
	}

	effects, err := evdev.EventBitsOf[input.ForceFeedback](dev)
	if err != nil {
		// Devices without EV_FF reject the query; that's not a failure.
		var ctrlErr *input.ControlError
		if !errors.As(err, &ctrlErr) || !errors.Is(ctrlErr.Errno, unix.EINVAL) {
			logger.Warn("force feedback query failed", "error", err)
		}
		return nil
	}
	for _, effect := range effects {
		fmt.Printf("  ff  %s (%d)\n", effect, uint16(effect))
	}
	if len(effects) > 0 {
		if capacity, err := dev.EffectCapacity(); err == nil {
			fmt.Printf("Effect slots: %d\n", capacity)
		}
	}
	return nil
}
