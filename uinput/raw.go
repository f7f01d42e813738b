package uinput

import (
	"encoding/binary"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/ioctl"
)

// Fixed record sizes of the uinput kernel ABI (64-bit layouts).
const (
	// deviceNameSize is the on-wire name field of struct uinput_setup,
	// including the required NUL terminator.
	deviceNameSize = 80

	// setupSize: struct input_id (8) + name (80) + ff_effects_max (4).
	setupSize = 92
	// absSetupSize: code (2) + 2 bytes padding + struct input_absinfo (24).
	absSetupSize = 28
	// ffUploadSize: request_id (4) + retval (4) + effect (48) + old (48).
	ffUploadSize = 104
	// ffEraseSize: request_id (4) + retval (4) + effect_id (4).
	ffEraseSize = 12
)

// Meta-events the kernel injects into a virtual device's read stream to start
// the two-phase upload/erase transactions.
const (
	evUinput   = 0x0101
	uiFFUpload = 1
	uiFFErase  = 2
)

// uinput control requests ('U' type), per linux/uinput.h.
var (
	uiDevCreate  = ioctl.IO('U', 1)
	uiDevDestroy = ioctl.IO('U', 2)
	uiDevSetup   = ioctl.IOW('U', 3, setupSize)
	uiAbsSetup   = ioctl.IOW('U', 4, absSetupSize)

	uiSetEvBit  = ioctl.IOW('U', 100, 4)
	uiSetKeyBit = ioctl.IOW('U', 101, 4)
	uiSetRelBit = ioctl.IOW('U', 102, 4)
	uiSetAbsBit = ioctl.IOW('U', 103, 4)
	uiSetFFBit  = ioctl.IOW('U', 107, 4)

	uiBeginFFUpload = ioctl.IOWR('U', 200, ffUploadSize)
	uiEndFFUpload   = ioctl.IOW('U', 201, ffUploadSize)
	uiBeginFFErase  = ioctl.IOWR('U', 202, ffEraseSize)
	uiEndFFErase    = ioctl.IOW('U', 203, ffEraseSize)
)

const nrSysname = 44

// marshalSetup encodes struct uinput_setup. The name must already be checked
// against the field size.
func marshalSetup(id input.DeviceID, name string, effectsMax uint32) [setupSize]byte {
	var buf [setupSize]byte
	binary.NativeEndian.PutUint16(buf[0:2], uint16(id.Bus))
	binary.NativeEndian.PutUint16(buf[2:4], id.Vendor)
	binary.NativeEndian.PutUint16(buf[4:6], id.Product)
	binary.NativeEndian.PutUint16(buf[6:8], id.Version)
	copy(buf[8:8+deviceNameSize], name)
	binary.NativeEndian.PutUint32(buf[88:92], effectsMax)
	return buf
}

// marshalAbsSetup encodes struct uinput_abs_setup with the axis calibration.
func marshalAbsSetup(axis input.AbsoluteAxis, info input.AbsInfo) [absSetupSize]byte {
	var buf [absSetupSize]byte
	binary.NativeEndian.PutUint16(buf[0:2], uint16(axis))
	// Bytes 2-3 are struct padding.
	binary.NativeEndian.PutUint32(buf[4:8], uint32(info.Value))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(info.Minimum))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(info.Maximum))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(info.NoiseThreshold))
	binary.NativeEndian.PutUint32(buf[20:24], uint32(info.Deadzone))
	binary.NativeEndian.PutUint32(buf[24:28], uint32(info.Resolution))
	return buf
}

// Field offsets within struct uinput_ff_upload / uinput_ff_erase.
const (
	ffRequestIDOffset   = 0
	ffReturnValueOffset = 4
	ffUploadEffect      = 8                            // uploaded ff_effect
	ffUploadOldEffect   = ffUploadEffect + input.EffectSize // previous ff_effect
	ffEraseEffectID     = 8
)
