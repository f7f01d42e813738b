// Package uinput creates virtual input devices through /dev/uinput: declaring
// capabilities up front, injecting events and serving the kernel's two-phase
// force feedback upload/erase transactions.
package uinput

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/eventio"
	"github.com/evkit/evkit/internal/ioctl"
)

// DevicePath is the fixed node virtual devices are created against.
const DevicePath = "/dev/uinput"

// Device is one created virtual input device. The capability set is fixed at
// creation; the kernel node exists until Close destroys it.
type Device struct {
	fd   int
	name string
}

// Create declares the full capability set, finalizes the device metadata and
// activates the device atomically. Capabilities cannot be added afterwards.
// The name must fit the 80-byte on-wire field with its NUL terminator, so
// length >= 80 is rejected before any kernel interaction. The maximum
// concurrent effect count is 1 when any force feedback bit was declared,
// otherwise 0.
func Create(id input.DeviceID, name string, bits []input.EventBit) (*Device, error) {
	if len(name) >= deviceNameSize {
		return nil, fmt.Errorf("device name is %d bytes, limit is %d: %w",
			len(name), deviceNameSize-1, ErrNameTooLong)
	}

	fd, err := unix.Open(DevicePath, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &CreateError{Phase: PhaseOpen, Err: fmt.Errorf("open %s: %w", DevicePath, err)}
	}

	d := &Device{fd: fd, name: name}
	if err := d.setup(id, name, bits); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return d, nil
}

func (d *Device) setup(id input.DeviceID, name string, bits []input.EventBit) error {
	var hasKey, hasRelativeAxis, hasAbsoluteAxis, hasForceFeedback bool

	for _, bit := range bits {
		switch bit := bit.(type) {
		case input.KeyBit:
			hasKey = true
			if _, err := ioctl.SubmitInt(d.fd, "UI_SET_KEYBIT", uiSetKeyBit, int(bit.Key)); err != nil {
				return &CreateError{Phase: PhaseSetup, Err: err}
			}
		case input.RelativeAxisBit:
			hasRelativeAxis = true
			if _, err := ioctl.SubmitInt(d.fd, "UI_SET_RELBIT", uiSetRelBit, int(bit.Axis)); err != nil {
				return &CreateError{Phase: PhaseSetup, Err: err}
			}
		case input.AbsoluteAxisBit:
			hasAbsoluteAxis = true
			if err := d.setupAbsAxis(bit); err != nil {
				return err
			}
		case input.ForceFeedbackBit:
			hasForceFeedback = true
			if _, err := ioctl.SubmitInt(d.fd, "UI_SET_FFBIT", uiSetFFBit, int(bit.Effect)); err != nil {
				return &CreateError{Phase: PhaseSetup, Err: err}
			}
		default:
			return &CreateError{Phase: PhaseSetup, Err: fmt.Errorf("unknown event bit type %T", bit)}
		}
	}

	kinds := []struct {
		present bool
		kind    input.EventKind
	}{
		{hasKey, input.EventKindKey},
		{hasRelativeAxis, input.EventKindRelativeAxis},
		{hasAbsoluteAxis, input.EventKindAbsoluteAxis},
		{hasForceFeedback, input.EventKindForceFeedback},
	}
	for _, k := range kinds {
		if !k.present {
			continue
		}
		if _, err := ioctl.SubmitInt(d.fd, "UI_SET_EVBIT", uiSetEvBit, int(k.kind)); err != nil {
			return &CreateError{Phase: PhaseSetup, Err: err}
		}
	}

	var effectsMax uint32
	if hasForceFeedback {
		effectsMax = 1
	}
	setup := marshalSetup(id, name, effectsMax)
	if _, err := ioctl.Submit(d.fd, "UI_DEV_SETUP", uiDevSetup, unsafe.Pointer(&setup[0])); err != nil {
		return &CreateError{Phase: PhaseSetup, Err: err}
	}

	if _, err := ioctl.Submit(d.fd, "UI_DEV_CREATE", uiDevCreate, nil); err != nil {
		return &CreateError{Phase: PhaseActivate, Err: err}
	}
	return nil
}

func (d *Device) setupAbsAxis(bit input.AbsoluteAxisBit) error {
	if err := bit.Validate(); err != nil {
		return &CreateError{Phase: PhaseSetup, Err: err}
	}
	if _, err := ioctl.SubmitInt(d.fd, "UI_SET_ABSBIT", uiSetAbsBit, int(bit.Axis)); err != nil {
		return &CreateError{Phase: PhaseSetup, Err: err}
	}

	// Seed the initial position at the midpoint of the declared range.
	setup := marshalAbsSetup(bit.Axis, input.AbsInfo{
		Value:          (bit.Maximum-bit.Minimum)/2 + bit.Minimum,
		Minimum:        bit.Minimum,
		Maximum:        bit.Maximum,
		NoiseThreshold: bit.NoiseThreshold,
		Deadzone:       bit.Deadzone,
		Resolution:     bit.Resolution,
	})
	if _, err := ioctl.Submit(d.fd, "UI_ABS_SETUP", uiAbsSetup, unsafe.Pointer(&setup[0])); err != nil {
		return &CreateError{Phase: PhaseSetup, Err: err}
	}
	return nil
}

// Close destroys the virtual device node and releases the handle. Safe to
// call more than once; teardown runs exactly once.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	fd := d.fd
	d.fd = -1
	_, destroyErr := ioctl.Submit(fd, "UI_DEV_DESTROY", uiDevDestroy, nil)
	closeErr := unix.Close(fd)
	if destroyErr != nil {
		return destroyErr
	}
	return closeErr
}

// Name returns the display name the device was created with.
func (d *Device) Name() string {
	return d.name
}

func (d *Device) sysname() (string, error) {
	return ioctl.GetString(d.fd, "UI_GET_SYSNAME", 'U', nrSysname)
}

// Emit injects an event into the virtual device. The timestamp is always
// zeroed on the wire. The kernel buffers emitted events until a Flush.
func (d *Device) Emit(body input.EventBody) error {
	return eventio.WriteEvent(d.fd, input.RawEventOf(body))
}

// PollForceFeedback reads one event from the virtual device's stream and
// classifies it as a force feedback request. Upload and erase requests come
// back as transaction guards that must be finalized (Complete or Close)
// before the next poll, or the kernel-side synchronous ioctl that produced
// them stays blocked. The comma-ok result is false when no event arrived
// within the timeout.
//
// The stream of a virtual device only ever carries force feedback traffic;
// any other event kind observed here fails with *UnexpectedEventError.
func (d *Device) PollForceFeedback(timeout time.Duration) (ForceFeedbackRequest, bool, error) {
	raw, ok, err := eventio.ReadEvent(d.fd, timeout)
	if err != nil || !ok {
		return nil, false, err
	}

	switch {
	case raw.Kind == evUinput && raw.Code == uiFFUpload:
		upload, err := d.beginUpload(uint32(raw.Value))
		if err != nil {
			return nil, false, err
		}
		return upload, true, nil
	case raw.Kind == evUinput && raw.Code == uiFFErase:
		erase, err := d.beginErase(uint32(raw.Value))
		if err != nil {
			return nil, false, err
		}
		return erase, true, nil
	default:
		req, err := directRequest(raw)
		if err != nil {
			return nil, false, err
		}
		return req, true, nil
	}
}

func (d *Device) beginUpload(requestID uint32) (*EffectUpload, error) {
	upload := &EffectUpload{finish: endUpload}
	upload.device = d
	putUint32(upload.buf[ffRequestIDOffset:], requestID)
	if _, err := ioctl.Submit(d.fd, "UI_BEGIN_FF_UPLOAD", uiBeginFFUpload, unsafe.Pointer(&upload.buf[0])); err != nil {
		return nil, err
	}
	return upload, nil
}

func (d *Device) beginErase(requestID uint32) (*EffectErase, error) {
	erase := &EffectErase{finish: endErase}
	erase.device = d
	putUint32(erase.buf[ffRequestIDOffset:], requestID)
	if _, err := ioctl.Submit(d.fd, "UI_BEGIN_FF_ERASE", uiBeginFFErase, unsafe.Pointer(&erase.buf[0])); err != nil {
		return nil, err
	}
	return erase, nil
}

func endUpload(u *EffectUpload) error {
	_, err := ioctl.Submit(u.device.fd, "UI_END_FF_UPLOAD", uiEndFFUpload, unsafe.Pointer(&u.buf[0]))
	return err
}

func endErase(e *EffectErase) error {
	_, err := ioctl.Submit(e.device.fd, "UI_END_FF_ERASE", uiEndFFErase, unsafe.Pointer(&e.buf[0]))
	return err
}
