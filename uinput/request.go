package uinput

import (
	"encoding/binary"
	"fmt"

	"github.com/evkit/evkit/input"
)

// ForceFeedbackRequest is a kernel-initiated request surfaced while polling a
// virtual device: an upload or erase transaction guard, a playback toggle, or
// an unmodeled force feedback event.
type ForceFeedbackRequest interface {
	isForceFeedbackRequest()
}

// EffectEnable asks the driver to start playing an effect.
type EffectEnable struct {
	EffectID input.EffectID
	// CycleCount is how many times the effect should run.
	CycleCount int32
}

// EffectDisable asks the driver to stop playing an effect.
type EffectDisable struct {
	EffectID input.EffectID
}

// OtherRequest carries force feedback events at or above the gain sub-range
// (FF_GAIN, FF_AUTOCENTER) that have no dedicated variant.
type OtherRequest struct {
	Code  uint16
	Value int32
}

func (*EffectUpload) isForceFeedbackRequest() {}
func (*EffectErase) isForceFeedbackRequest()  {}
func (EffectEnable) isForceFeedbackRequest()  {}
func (EffectDisable) isForceFeedbackRequest() {}
func (OtherRequest) isForceFeedbackRequest()  {}

// UnexpectedEventError reports an event of a kind the virtual device's read
// stream must never carry.
type UnexpectedEventError struct {
	Kind  input.EventKind
	Code  uint16
	Value int32
}

func (e *UnexpectedEventError) Error() string {
	return fmt.Sprintf("unexpected event kind %s (code %d, value %d) on the force feedback stream",
		e.Kind, e.Code, e.Value)
}

// directRequest classifies a non-meta event from the virtual device stream.
// Force feedback events below the gain sub-range toggle playback by the sign
// of their value; the rest of the kind passes through as OtherRequest. Any
// other kind is a protocol violation.
func directRequest(raw input.RawEvent) (ForceFeedbackRequest, error) {
	if input.EventKind(raw.Kind) != input.EventKindForceFeedback {
		return nil, &UnexpectedEventError{
			Kind:  input.EventKind(raw.Kind),
			Code:  raw.Code,
			Value: raw.Value,
		}
	}
	if input.ForceFeedback(raw.Code) >= input.ForceFeedbackGain {
		return OtherRequest{Code: raw.Code, Value: raw.Value}, nil
	}
	if raw.Value > 0 {
		return EffectEnable{EffectID: input.EffectID(raw.Code), CycleCount: raw.Value}, nil
	}
	return EffectDisable{EffectID: input.EffectID(raw.Code)}, nil
}

// EffectUpload is the guard for a kernel upload transaction. It owns the
// kernel-filled struct uinput_ff_upload; Complete (or Close, for defer) must
// run before the guard is discarded, or the application-side EVIOCSFF that
// triggered the request stays blocked inside the kernel. Finalization runs
// exactly once no matter how often either method is called.
type EffectUpload struct {
	device   *Device
	buf      [ffUploadSize]byte
	finish   func(*EffectUpload) error
	finished bool
}

// EffectID returns the handle of the effect slot being uploaded into.
func (u *EffectUpload) EffectID() input.EffectID {
	return input.EffectID(binary.NativeEndian.Uint16(u.buf[ffUploadEffect+2 : ffUploadEffect+4]))
}

// Effect decodes the uploaded effect payload. Unmodeled effect families fail
// with *input.UnsupportedEffectError.
func (u *EffectUpload) Effect() (input.ForceFeedbackEffect, error) {
	var effect input.ForceFeedbackEffect
	err := effect.UnmarshalBinary(u.buf[ffUploadEffect : ffUploadEffect+input.EffectSize])
	return effect, err
}

// PreviousEffect decodes the effect the slot held before this upload.
func (u *EffectUpload) PreviousEffect() (input.ForceFeedbackEffect, error) {
	var effect input.ForceFeedbackEffect
	err := effect.UnmarshalBinary(u.buf[ffUploadOldEffect : ffUploadOldEffect+input.EffectSize])
	return effect, err
}

// SetReturnValue records the driver's verdict written back to the blocked
// uploader; zero means success, a negative errno rejects the upload.
func (u *EffectUpload) SetReturnValue(v int32) {
	putUint32(u.buf[ffReturnValueOffset:], uint32(v))
}

// Complete finalizes the transaction, unblocking the kernel-side ioctl.
func (u *EffectUpload) Complete() error {
	return u.finalize()
}

// Close is the guaranteed fallback finalization path for defer. It performs
// the exact same write-back as Complete.
func (u *EffectUpload) Close() error {
	return u.finalize()
}

func (u *EffectUpload) finalize() error {
	if u.finished {
		return nil
	}
	u.finished = true
	return u.finish(u)
}

// EffectErase is the guard for a kernel erase transaction, with the same
// finalize-exactly-once contract as EffectUpload.
type EffectErase struct {
	device   *Device
	buf      [ffEraseSize]byte
	finish   func(*EffectErase) error
	finished bool
}

// EffectID returns the handle of the effect being erased.
func (e *EffectErase) EffectID() input.EffectID {
	return input.EffectID(binary.NativeEndian.Uint32(e.buf[ffEraseEffectID : ffEraseEffectID+4]))
}

// SetReturnValue records the driver's verdict written back to the blocked
// eraser; zero means success, a negative errno rejects the erase.
func (e *EffectErase) SetReturnValue(v int32) {
	putUint32(e.buf[ffReturnValueOffset:], uint32(v))
}

// Complete finalizes the transaction, unblocking the kernel-side ioctl.
func (e *EffectErase) Complete() error {
	return e.finalize()
}

// Close is the guaranteed fallback finalization path for defer.
func (e *EffectErase) Close() error {
	return e.finalize()
}

func (e *EffectErase) finalize() error {
	if e.finished {
		return nil
	}
	e.finished = true
	return e.finish(e)
}

func putUint32(buf []byte, v uint32) {
	binary.NativeEndian.PutUint32(buf[:4], v)
}
