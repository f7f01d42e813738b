package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// EffectID is a kernel-assigned force feedback effect handle. It is filled in
// by the kernel on upload and is never constructed by the caller.
type EffectID int16

// EffectSize is the size of struct ff_effect on 64-bit Linux: a 14-byte
// header padded to 16 (the union contains a pointer) plus a 32-byte union.
const EffectSize = 48

// EffectDuration is how long an effect plays: a finite duration or forever.
// The wire field is 16-bit milliseconds; finite durations are clamped to
// 0x7fff on the way out, and a wire value of zero means infinite. A zero
// finite duration therefore comes back as Infinite after a round trip; that
// aliasing is the kernel's own convention.
type EffectDuration struct {
	d time.Duration
}

const infiniteDuration = time.Duration(-1)

// FiniteDuration returns a duration that plays for d.
func FiniteDuration(d time.Duration) EffectDuration {
	return EffectDuration{d: d}
}

// InfiniteDuration returns a duration that plays until the effect is stopped.
func InfiniteDuration() EffectDuration {
	return EffectDuration{d: infiniteDuration}
}

// IsInfinite reports whether the effect plays until explicitly stopped.
func (d EffectDuration) IsInfinite() bool {
	return d.d == infiniteDuration
}

// Duration returns the finite play length; zero when infinite.
func (d EffectDuration) Duration() time.Duration {
	if d.IsInfinite() {
		return 0
	}
	return d.d
}

func (d EffectDuration) String() string {
	if d.IsInfinite() {
		return "infinite"
	}
	return d.d.String()
}

// ClampMillis converts a duration to the 15-bit millisecond range the replay
// fields use. Anything beyond 32767ms saturates; negative durations saturate
// to zero rather than wrapping through the uint16 conversion.
func ClampMillis(d time.Duration) uint16 {
	ms := d.Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms > 0x7fff {
		return 0x7fff
	}
	return uint16(ms)
}

// EffectTrigger mirrors struct ff_trigger: the button that fires the effect
// and the minimum interval between triggers, in milliseconds.
type EffectTrigger struct {
	Button   uint16
	Interval uint16
}

// EffectKind is the closed set of modeled effect payloads, selected by the
// numeric effect-family code on the wire. Only Rumble is modeled; decoding an
// unmodeled family fails with UnsupportedEffectError rather than guessing the
// union layout.
type EffectKind interface {
	isEffectKind()
	familyCode() ForceFeedback
}

// Rumble is the FF_RUMBLE payload: magnitudes for the heavy and light motors.
type Rumble struct {
	StrongMagnitude uint16
	WeakMagnitude   uint16
}

func (Rumble) isEffectKind()             {}
func (Rumble) familyCode() ForceFeedback { return ForceFeedbackRumble }

// ForceFeedbackEffect is the semantic form of struct ff_effect.
type ForceFeedbackEffect struct {
	ID        EffectID
	Direction uint16
	Kind      EffectKind
	Duration  EffectDuration
	Delay     time.Duration
	Trigger   EffectTrigger
}

// UnsupportedEffectError reports an effect-family code with no modeled
// payload decoding.
type UnsupportedEffectError struct {
	Kind uint16
}

func (e *UnsupportedEffectError) Error() string {
	return fmt.Sprintf("unsupported force feedback effect kind 0x%02x", e.Kind)
}

// MarshalBinary encodes the effect into the EffectSize-byte struct ff_effect
// layout. A nil or unmodeled Kind is an error.
func (e ForceFeedbackEffect) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EffectSize)

	var family ForceFeedback
	switch kind := e.Kind.(type) {
	case Rumble:
		family = kind.familyCode()
		binary.NativeEndian.PutUint16(buf[16:18], kind.StrongMagnitude)
		binary.NativeEndian.PutUint16(buf[18:20], kind.WeakMagnitude)
	default:
		return nil, fmt.Errorf("force feedback effect has no encodable kind: %T", e.Kind)
	}

	binary.NativeEndian.PutUint16(buf[0:2], uint16(family))
	binary.NativeEndian.PutUint16(buf[2:4], uint16(e.ID))
	binary.NativeEndian.PutUint16(buf[4:6], e.Direction)
	binary.NativeEndian.PutUint16(buf[6:8], e.Trigger.Button)
	binary.NativeEndian.PutUint16(buf[8:10], e.Trigger.Interval)

	var length uint16
	if !e.Duration.IsInfinite() {
		length = ClampMillis(e.Duration.Duration())
	}
	binary.NativeEndian.PutUint16(buf[10:12], length)
	binary.NativeEndian.PutUint16(buf[12:14], ClampMillis(e.Delay))

	return buf, nil
}

// UnmarshalBinary decodes a kernel-filled struct ff_effect. Only the union
// bytes matching the tag are read; an unknown tag yields
// UnsupportedEffectError.
func (e *ForceFeedbackEffect) UnmarshalBinary(data []byte) error {
	if len(data) < EffectSize {
		return io.ErrUnexpectedEOF
	}

	family := binary.NativeEndian.Uint16(data[0:2])
	switch ForceFeedback(family) {
	case ForceFeedbackRumble:
		e.Kind = Rumble{
			StrongMagnitude: binary.NativeEndian.Uint16(data[16:18]),
			WeakMagnitude:   binary.NativeEndian.Uint16(data[18:20]),
		}
	default:
		return &UnsupportedEffectError{Kind: family}
	}

	e.ID = EffectID(binary.NativeEndian.Uint16(data[2:4]))
	e.Direction = binary.NativeEndian.Uint16(data[4:6])
	e.Trigger.Button = binary.NativeEndian.Uint16(data[6:8])
	e.Trigger.Interval = binary.NativeEndian.Uint16(data[8:10])

	length := binary.NativeEndian.Uint16(data[10:12])
	if length == 0 {
		e.Duration = InfiniteDuration()
	} else {
		e.Duration = FiniteDuration(time.Duration(length) * time.Millisecond)
	}
	e.Delay = time.Duration(binary.NativeEndian.Uint16(data[12:14])) * time.Millisecond

	return nil
}
