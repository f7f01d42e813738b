package input

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampMillis(t *testing.T) {
	type testCase struct {
		name string
		in   time.Duration
		want uint16
	}

	cases := []testCase{
		{name: "zero", in: 0, want: 0},
		{name: "negative saturates to zero", in: -time.Millisecond, want: 0},
		{name: "very negative saturates to zero", in: -3 * time.Hour, want: 0},
		{name: "one millisecond", in: time.Millisecond, want: 1},
		{name: "at the limit", in: 32767 * time.Millisecond, want: 32767},
		{name: "one past the limit", in: 32768 * time.Millisecond, want: 32767},
		{name: "hours saturate", in: 3 * time.Hour, want: 32767},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampMillis(tc.in))
		})
	}
}

func TestEffectDuration(t *testing.T) {
	inf := InfiniteDuration()
	assert.True(t, inf.IsInfinite())
	assert.Equal(t, time.Duration(0), inf.Duration())

	fin := FiniteDuration(250 * time.Millisecond)
	assert.False(t, fin.IsInfinite())
	assert.Equal(t, 250*time.Millisecond, fin.Duration())
}

func TestEffectMarshalLayout(t *testing.T) {
	effect := ForceFeedbackEffect{
		ID:        3,
		Direction: 0x4000,
		Kind:      Rumble{StrongMagnitude: 0xff00, WeakMagnitude: 0x00ff},
		Duration:  FiniteDuration(1500 * time.Millisecond),
		Delay:     100 * time.Millisecond,
		Trigger:   EffectTrigger{Button: 5, Interval: 200},
	}

	buf, err := effect.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, EffectSize)

	assert.Equal(t, uint16(ForceFeedbackRumble), binary.NativeEndian.Uint16(buf[0:2]))
	assert.Equal(t, uint16(3), binary.NativeEndian.Uint16(buf[2:4]))
	assert.Equal(t, uint16(0x4000), binary.NativeEndian.Uint16(buf[4:6]))
	assert.Equal(t, uint16(5), binary.NativeEndian.Uint16(buf[6:8]))
	assert.Equal(t, uint16(200), binary.NativeEndian.Uint16(buf[8:10]))
	assert.Equal(t, uint16(1500), binary.NativeEndian.Uint16(buf[10:12]))
	assert.Equal(t, uint16(100), binary.NativeEndian.Uint16(buf[12:14]))
	// Union payload starts at the pointer-aligned offset 16.
	assert.Equal(t, uint16(0xff00), binary.NativeEndian.Uint16(buf[16:18]))
	assert.Equal(t, uint16(0x00ff), binary.NativeEndian.Uint16(buf[18:20]))

	var decoded ForceFeedbackEffect
	require.NoError(t, decoded.UnmarshalBinary(buf))
	assert.Equal(t, effect, decoded)
}

func TestEffectDurationWireEncoding(t *testing.T) {
	infinite := ForceFeedbackEffect{Kind: Rumble{}, Duration: InfiniteDuration()}
	buf, err := infinite.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), binary.NativeEndian.Uint16(buf[10:12]))

	var decoded ForceFeedbackEffect
	require.NoError(t, decoded.UnmarshalBinary(buf))
	assert.True(t, decoded.Duration.IsInfinite())

	// The kernel uses zero for "play forever", so a zero finite duration
	// aliases to Infinite after a round trip.
	zero := ForceFeedbackEffect{Kind: Rumble{}, Duration: FiniteDuration(0)}
	buf, err = zero.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), binary.NativeEndian.Uint16(buf[10:12]))

	overlong := ForceFeedbackEffect{Kind: Rumble{}, Duration: FiniteDuration(time.Hour)}
	buf, err = overlong.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, uint16(32767), binary.NativeEndian.Uint16(buf[10:12]))
}

func TestEffectUnmarshalUnsupportedKind(t *testing.T) {
	buf := make([]byte, EffectSize)
	binary.NativeEndian.PutUint16(buf[0:2], uint16(ForceFeedbackPeriodic))

	var effect ForceFeedbackEffect
	err := effect.UnmarshalBinary(buf)
	var unsupported *UnsupportedEffectError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, uint16(ForceFeedbackPeriodic), unsupported.Kind)
}

func TestEffectMarshalNilKind(t *testing.T) {
	_, err := ForceFeedbackEffect{}.MarshalBinary()
	assert.Error(t, err)
}
