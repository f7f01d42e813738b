package evdev

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/eventio"
)

func dupFd(fd int) (int, error) {
	return unix.Dup(fd)
}

// pipeDevice backs a Device with a pipe so the event-emission path can be
// observed without hardware.
func pipeDevice(t *testing.T) (*Device, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return &Device{fd: int(w.Fd()), path: "pipe"}, r
}

func readEmitted(t *testing.T, r *os.File) input.RawEvent {
	t.Helper()
	raw, ok, err := eventio.ReadEvent(int(r.Fd()), time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	return raw
}

func TestEmitZeroesTimestamp(t *testing.T) {
	dev, r := pipeDevice(t)

	require.NoError(t, dev.Emit(input.KeyPress{Key: input.KeyEnter}))

	raw := readEmitted(t, r)
	assert.Equal(t, input.Timestamp{}, raw.Time)
	assert.Equal(t, uint16(input.EventKindKey), raw.Kind)
	assert.Equal(t, uint16(input.KeyEnter), raw.Code)
	assert.Equal(t, int32(1), raw.Value)
}

func TestEnableDisableEffectEventShape(t *testing.T) {
	dev, r := pipeDevice(t)
	id := input.EffectID(2)

	// Enable and disable ride the regular emission path as events on the
	// device's own force feedback kind.
	require.NoError(t, dev.EnableEffect(id, 3))
	raw := readEmitted(t, r)
	assert.Equal(t, uint16(input.EventKindForceFeedback), raw.Kind)
	assert.Equal(t, uint16(2), raw.Code)
	assert.Equal(t, int32(3), raw.Value)

	require.NoError(t, dev.DisableEffect(id))
	raw = readEmitted(t, r)
	assert.Equal(t, uint16(input.EventKindForceFeedback), raw.Kind)
	assert.Equal(t, uint16(2), raw.Code)
	assert.Equal(t, int32(0), raw.Value)
}

func TestReadDecodesEvents(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	dev := &Device{fd: int(r.Fd()), path: "pipe"}

	want := input.RawEvent{
		Time:  input.Timestamp{Sec: 9, Usec: 100},
		Kind:  uint16(input.EventKindRelativeAxis),
		Code:  uint16(input.RelativeAxisY),
		Value: -7,
	}
	require.NoError(t, eventio.WriteEvent(int(w.Fd()), want))

	ev, ok, err := dev.Read(time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Time, ev.Time)
	assert.Equal(t, input.RelativeMove{Axis: input.RelativeAxisY, Delta: -7}, ev.Body)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open("/dev/input/event-does-not-exist")
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	// Duplicate the fd so the cleanup close doesn't double-free it.
	fd, err := dupFd(int(w.Fd()))
	require.NoError(t, err)

	dev := &Device{fd: fd, path: "pipe"}
	require.NoError(t, dev.Close())
	assert.NoError(t, dev.Close())
}
