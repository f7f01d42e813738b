package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRoundTrips(t *testing.T) {
	type testCase struct {
		name string
		body EventBody
	}

	cases := []testCase{
		{name: "key press", body: KeyPress{Key: KeyA}},
		{name: "key release", body: KeyRelease{Key: KeySpace}},
		{name: "button press", body: KeyPress{Key: KeyPadSouth}},
		{name: "relative move", body: RelativeMove{Axis: RelativeAxisX, Delta: -3}},
		{name: "absolute move", body: AbsoluteMove{Axis: AbsoluteAxisHat0Y, Position: 127}},
		{name: "flush", body: Flush{}},
		{name: "dropped", body: Dropped{}},
		{name: "other", body: Other{Kind: EventKindMisc, Code: 4, Value: 0x1234}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := RawEventOf(tc.body)
			decoded := EventFromRaw(raw)
			assert.Equal(t, tc.body, decoded.Body)
			assert.Equal(t, raw, decoded.Raw())
		})
	}
}

func TestEventDecodePriority(t *testing.T) {
	type testCase struct {
		name string
		raw  RawEvent
		want EventBody
	}

	cases := []testCase{
		{
			name: "key value 1 is a press",
			raw:  RawEvent{Kind: uint16(EventKindKey), Code: uint16(KeyQ), Value: 1},
			want: KeyPress{Key: KeyQ},
		},
		{
			name: "key value 0 is a release",
			raw:  RawEvent{Kind: uint16(EventKindKey), Code: uint16(KeyQ), Value: 0},
			want: KeyRelease{Key: KeyQ},
		},
		{
			name: "key value 2 (autorepeat) is not modeled",
			raw:  RawEvent{Kind: uint16(EventKindKey), Code: uint16(KeyQ), Value: 2},
			want: Other{Kind: EventKindKey, Code: uint16(KeyQ), Value: 2},
		},
		{
			name: "sync code 0 value 0 is a flush",
			raw:  RawEvent{Kind: uint16(EventKindSynchronization)},
			want: Flush{},
		},
		{
			name: "sync code 3 value 0 is a drop marker",
			raw:  RawEvent{Kind: uint16(EventKindSynchronization), Code: 3},
			want: Dropped{},
		},
		{
			name: "sync with a value falls through",
			raw:  RawEvent{Kind: uint16(EventKindSynchronization), Code: 0, Value: 7},
			want: Other{Kind: EventKindSynchronization, Code: 0, Value: 7},
		},
		{
			name: "unknown kind passes through verbatim",
			raw:  RawEvent{Kind: 0x3f, Code: 99, Value: -1},
			want: Other{Kind: EventKind(0x3f), Code: 99, Value: -1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded := EventFromRaw(tc.raw)
			assert.Equal(t, tc.want, decoded.Body)
			// Every recognized triple must encode back to the same wire form.
			assert.Equal(t, tc.raw, decoded.Raw())
		})
	}
}

func TestEventTimestampHandling(t *testing.T) {
	raw := RawEvent{
		Time:  Timestamp{Sec: 12, Usec: 500},
		Kind:  uint16(EventKindKey),
		Code:  uint16(KeyA),
		Value: 1,
	}
	ev := EventFromRaw(raw)
	assert.Equal(t, Timestamp{Sec: 12, Usec: 500}, ev.Time)

	// The outgoing encoding never carries a producer timestamp.
	out := RawEventOf(ev.Body)
	assert.Equal(t, Timestamp{}, out.Time)
	require.Equal(t, raw.Kind, out.Kind)
	require.Equal(t, raw.Code, out.Code)
	require.Equal(t, raw.Value, out.Value)
}

func TestTimestampArithmetic(t *testing.T) {
	a := Timestamp{Sec: 2, Usec: 250_000}
	b := Timestamp{Sec: 1, Usec: 750_000}
	assert.Equal(t, "500ms", a.Sub(b).String())
	assert.InDelta(t, 2.25, a.Seconds(), 1e-9)
}
