// Package evdev opens physical input devices (/dev/input/eventN) and exposes
// their event stream, capability queries, exclusive grab and force feedback
// lifecycle. Each Device exclusively owns one open kernel handle.
package evdev

import (
	"encoding/binary"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/eventio"
	"github.com/evkit/evkit/internal/ioctl"
)

// Device is one open physical input device. The handle is non-blocking; all
// reads go through the poll layer.
type Device struct {
	fd   int
	path string
}

// Open opens the device read+write and non-blocking, and switches its event
// timestamps to CLOCK_MONOTONIC so they are comparable across reads and
// resistant to wall-clock adjustment. Failure of either step fails the whole
// open.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	clock := int32(unix.CLOCK_MONOTONIC)
	if _, err := ioctl.Submit(fd, "EVIOCSCLOCKID", eviocsClockID, unsafe.Pointer(&clock)); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("set clock source on %s: %w", path, err)
	}

	return &Device{fd: fd, path: path}, nil
}

// Close releases the device handle.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	fd := d.fd
	d.fd = -1
	return unix.Close(fd)
}

// Path returns the path the device was opened from.
func (d *Device) Path() string {
	return d.path
}

// ID reads the device identity.
func (d *Device) ID() (input.DeviceID, error) {
	var raw [8]byte
	if _, err := ioctl.Submit(d.fd, "EVIOCGID", eviocgID, unsafe.Pointer(&raw[0])); err != nil {
		return input.DeviceID{}, err
	}
	return input.DeviceID{
		Bus:     input.Bus(binary.NativeEndian.Uint16(raw[0:2])),
		Vendor:  binary.NativeEndian.Uint16(raw[2:4]),
		Product: binary.NativeEndian.Uint16(raw[4:6]),
		Version: binary.NativeEndian.Uint16(raw[6:8]),
	}, nil
}

// Name reads the device's display name.
func (d *Device) Name() (string, error) {
	return ioctl.GetString(d.fd, "EVIOCGNAME", 'E', nrName)
}

// PhysicalLocation reads the device's physical topology string.
func (d *Device) PhysicalLocation() (string, error) {
	return ioctl.GetString(d.fd, "EVIOCGPHYS", 'E', nrPhysicalLocation)
}

// UniqueID reads the device's unique identifier, when the hardware provides
// one.
func (d *Device) UniqueID() (string, error) {
	return ioctl.GetString(d.fd, "EVIOCGUNIQ", 'E', nrUniqueID)
}

// DriverVersion reads the evdev driver version.
func (d *Device) DriverVersion() (int32, error) {
	var version int32
	if _, err := ioctl.Submit(d.fd, "EVIOCGVERSION", eviocgVersion, unsafe.Pointer(&version)); err != nil {
		return 0, err
	}
	return version, nil
}

// Read waits for readiness and performs exactly one fixed-size read. The
// comma-ok result is false when no event arrived within the timeout (a
// negative timeout blocks indefinitely). Events come back in the exact order
// the kernel produced them.
func (d *Device) Read(timeout time.Duration) (input.Event, bool, error) {
	raw, ok, err := eventio.ReadEvent(d.fd, timeout)
	if err != nil || !ok {
		return input.Event{}, false, err
	}
	return input.EventFromRaw(raw), true, nil
}

// Grab takes exclusive ownership of the device: no other consumer,
// system-wide, observes its events until Release.
func (d *Device) Grab() error {
	_, err := ioctl.SubmitInt(d.fd, "EVIOCGRAB", eviocGrab, 1)
	return err
}

// Release gives up exclusive ownership.
func (d *Device) Release() error {
	_, err := ioctl.SubmitInt(d.fd, "EVIOCGRAB", eviocGrab, 0)
	return err
}

// AbsInfo reads the calibration record for one absolute axis.
func (d *Device) AbsInfo(axis input.AbsoluteAxis) (input.AbsInfo, error) {
	var raw [absInfoSize]byte
	req := ioctl.IOR('E', nrAbsInfoBase+uintptr(axis), absInfoSize)
	if _, err := ioctl.Submit(d.fd, "EVIOCGABS", req, unsafe.Pointer(&raw[0])); err != nil {
		return input.AbsInfo{}, err
	}
	return input.AbsInfo{
		Value:          int32(binary.NativeEndian.Uint32(raw[0:4])),
		Minimum:        int32(binary.NativeEndian.Uint32(raw[4:8])),
		Maximum:        int32(binary.NativeEndian.Uint32(raw[8:12])),
		NoiseThreshold: int32(binary.NativeEndian.Uint32(raw[12:16])),
		Deadzone:       int32(binary.NativeEndian.Uint32(raw[16:20])),
		Resolution:     int32(binary.NativeEndian.Uint32(raw[20:24])),
	}, nil
}

// UploadEffect uploads a force feedback effect to the hardware. The effect's
// ID is forced to -1 so the kernel assigns a fresh handle, which is returned.
func (d *Device) UploadEffect(effect input.ForceFeedbackEffect) (input.EffectID, error) {
	effect.ID = -1
	buf, err := effect.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if _, err := ioctl.Submit(d.fd, "EVIOCSFF", eviocsFF, unsafe.Pointer(&buf[0])); err != nil {
		return 0, err
	}
	// The kernel writes the assigned handle back into the id field.
	id := input.EffectID(binary.NativeEndian.Uint16(buf[2:4]))
	if id < 0 {
		return 0, fmt.Errorf("EVIOCSFF returned out-of-range effect id %d", id)
	}
	return id, nil
}

// EraseEffect removes a previously uploaded effect.
func (d *Device) EraseEffect(id input.EffectID) error {
	_, err := ioctl.SubmitInt(d.fd, "EVIOCRMFF", eviocrmFF, int(id))
	return err
}

// EffectCapacity reports how many effects the device can keep uploaded
// simultaneously.
func (d *Device) EffectCapacity() (int, error) {
	var count int32
	if _, err := ioctl.Submit(d.fd, "EVIOCGEFFECTS", eviocgEffects, unsafe.Pointer(&count)); err != nil {
		return 0, err
	}
	return int(count), nil
}

// EnableEffect starts playback of an uploaded effect for the given number of
// cycles. Start and stop are plain events on the device's own force feedback
// kind, so they share the emission path rather than a separate channel.
func (d *Device) EnableEffect(id input.EffectID, cycles int32) error {
	return d.Emit(input.Other{
		Kind:  input.EventKindForceFeedback,
		Code:  uint16(id),
		Value: cycles,
	})
}

// DisableEffect stops playback of an uploaded effect.
func (d *Device) DisableEffect(id input.EffectID) error {
	return d.Emit(input.Other{
		Kind:  input.EventKindForceFeedback,
		Code:  uint16(id),
		Value: 0,
	})
}

// Emit injects an event as if the hardware generated it. The timestamp is
// always zeroed on the wire. Meaningful only while the device is not grabbed
// by this same caller.
func (d *Device) Emit(body input.EventBody) error {
	return eventio.WriteEvent(d.fd, input.RawEventOf(body))
}
