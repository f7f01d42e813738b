package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeNameTables(t *testing.T) {
	key, ok := KeyByName("Space")
	require.True(t, ok)
	assert.Equal(t, KeySpace, key)
	assert.Equal(t, "Space", KeySpace.String())

	kind, ok := EventKindByName("ForceFeedback")
	require.True(t, ok)
	assert.Equal(t, EventKindForceFeedback, kind)

	axis, ok := RelativeAxisByName("WheelHiRes")
	require.True(t, ok)
	assert.Equal(t, RelativeAxisWheelHiRes, axis)

	abs, ok := AbsoluteAxisByName("Hat0X")
	require.True(t, ok)
	assert.Equal(t, AbsoluteAxisHat0X, abs)

	bus, ok := BusByName("Virtual")
	require.True(t, ok)
	assert.Equal(t, BusVirtual, bus)

	ff, ok := ForceFeedbackByName("Rumble")
	require.True(t, ok)
	assert.Equal(t, ForceFeedbackRumble, ff)

	_, ok = KeyByName("NoSuchKey")
	assert.False(t, ok)
}

func TestCodeHexFallback(t *testing.T) {
	assert.Equal(t, "0x2BC", Key(0x2bc).String())
	assert.Equal(t, "0x01F", EventKind(0x1f).String())
	assert.Equal(t, "0x00F", RelativeAxis(15).String())
	assert.Equal(t, "0x0FF", Bus(0xff).String())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, EventKindKey, KindOf[Key]())
	assert.Equal(t, EventKindRelativeAxis, KindOf[RelativeAxis]())
	assert.Equal(t, EventKindAbsoluteAxis, KindOf[AbsoluteAxis]())
	assert.Equal(t, EventKindForceFeedback, KindOf[ForceFeedback]())
}
