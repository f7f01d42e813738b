package input

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawEventMarshalLayout(t *testing.T) {
	raw := RawEvent{
		Time:  Timestamp{Sec: 1700000000, Usec: 123456},
		Kind:  uint16(EventKindRelativeAxis),
		Code:  uint16(RelativeAxisWheel),
		Value: -2,
	}

	buf, err := raw.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, RawEventSize)

	assert.Equal(t, uint64(1700000000), binary.NativeEndian.Uint64(buf[0:8]))
	assert.Equal(t, uint64(123456), binary.NativeEndian.Uint64(buf[8:16]))
	assert.Equal(t, uint16(EventKindRelativeAxis), binary.NativeEndian.Uint16(buf[16:18]))
	assert.Equal(t, uint16(RelativeAxisWheel), binary.NativeEndian.Uint16(buf[18:20]))
	assert.Equal(t, int32(-2), int32(binary.NativeEndian.Uint32(buf[20:24])))

	var decoded RawEvent
	require.NoError(t, decoded.UnmarshalBinary(buf))
	assert.Equal(t, raw, decoded)
}

func TestRawEventUnmarshalShortBuffer(t *testing.T) {
	var raw RawEvent
	err := raw.UnmarshalBinary(make([]byte, RawEventSize-1))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
