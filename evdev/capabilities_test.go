package evdev

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowEventBitsTruncatesToReportedCount(t *testing.T) {
	var sizes []int
	buf, err := growEventBits(func(buf []byte) (int, error) {
		sizes = append(sizes, len(buf))
		buf[0] = 0xaa
		return 96, nil
	})
	require.NoError(t, err)
	assert.Len(t, buf, 96)
	assert.Equal(t, byte(0xaa), buf[0])
	assert.Equal(t, []int{bitsChunkSize}, sizes)
}

func TestGrowEventBitsRegrowsOnExactFit(t *testing.T) {
	// A kernel count that fills the buffer completely cannot be told
	// apart from a truncated one, so the query must be retried larger.
	var sizes []int
	buf, err := growEventBits(func(buf []byte) (int, error) {
		sizes = append(sizes, len(buf))
		if len(buf) < 2*bitsChunkSize {
			return len(buf), nil
		}
		return bitsChunkSize + 42, nil
	})
	require.NoError(t, err)
	assert.Len(t, buf, bitsChunkSize+42)
	assert.Equal(t, []int{bitsChunkSize, 2 * bitsChunkSize}, sizes)
}

func TestGrowEventBitsPropagatesErrors(t *testing.T) {
	queryErr := errors.New("query failed")
	_, err := growEventBits(func([]byte) (int, error) {
		return 0, queryErr
	})
	assert.ErrorIs(t, err, queryErr)
}
