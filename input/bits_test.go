package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteAxisBitValidate(t *testing.T) {
	ok := AbsoluteAxisBit{Axis: AbsoluteAxisX, Minimum: 0, Maximum: 255}
	assert.NoError(t, ok.Validate())

	equal := AbsoluteAxisBit{Axis: AbsoluteAxisX, Minimum: 5, Maximum: 5}
	assert.NoError(t, equal.Validate())

	inverted := AbsoluteAxisBit{Axis: AbsoluteAxisY, Minimum: 10, Maximum: -10}
	assert.ErrorIs(t, inverted.Validate(), ErrAxisRange)
	// The range must never come back silently swapped.
	assert.Equal(t, int32(10), inverted.Minimum)
	assert.Equal(t, int32(-10), inverted.Maximum)
}
