package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evkit/evkit/input"
)

func TestNewEventView(t *testing.T) {
	type testCase struct {
		name string
		ev   input.Event
		want EventView
	}

	cases := []testCase{
		{
			name: "key press",
			ev: input.Event{
				Time: input.Timestamp{Sec: 2, Usec: 500000},
				Body: input.KeyPress{Key: input.KeyA},
			},
			want: EventView{Time: 2.5, Type: "key-press", Code: "A"},
		},
		{
			name: "relative move",
			ev:   input.Event{Body: input.RelativeMove{Axis: input.RelativeAxisX, Delta: -3}},
			want: EventView{Type: "relative-move", Code: "X", Value: -3},
		},
		{
			name: "absolute move",
			ev:   input.Event{Body: input.AbsoluteMove{Axis: input.AbsoluteAxisRX, Position: 140}},
			want: EventView{Type: "absolute-move", Code: "RX", Value: 140},
		},
		{
			name: "flush",
			ev:   input.Event{Body: input.Flush{}},
			want: EventView{Type: "flush"},
		},
		{
			name: "dropped",
			ev:   input.Event{Body: input.Dropped{}},
			want: EventView{Type: "dropped"},
		},
		{
			name: "other keeps raw identity",
			ev: input.Event{Body: input.Other{
				Kind:  input.EventKindMisc,
				Code:  4,
				Value: 11,
			}},
			want: EventView{Type: "other", Code: "Misc/4", Value: 11},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewEventView(tc.ev))
		})
	}
}

func TestFormatBody(t *testing.T) {
	assert.Equal(t, "key press   Enter", formatBody(input.KeyPress{Key: input.KeyEnter}))
	assert.Equal(t, "key release Enter", formatBody(input.KeyRelease{Key: input.KeyEnter}))
	assert.Contains(t, formatBody(input.RelativeMove{Axis: input.RelativeAxisY, Delta: 4}), "+4")
	assert.Contains(t, formatBody(input.Flush{}), "flush")
}

func TestParseAbsAxis(t *testing.T) {
	bit, err := parseAbsAxis("X=0:255")
	assert.NoError(t, err)
	assert.Equal(t, input.AbsoluteAxisBit{Axis: input.AbsoluteAxisX, Minimum: 0, Maximum: 255}, bit)

	_, err = parseAbsAxis("X")
	assert.Error(t, err)

	_, err = parseAbsAxis("Bogus=0:255")
	assert.Error(t, err)

	_, err = parseAbsAxis("X=0")
	assert.Error(t, err)

	_, err = parseAbsAxis("X=zero:255")
	assert.Error(t, err)

	_, err = parseAbsAxis("X=255:0")
	assert.ErrorIs(t, err, input.ErrAxisRange)
}
