package bitmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndices(t *testing.T) {
	type testCase struct {
		name string
		buf  []byte
		want []int
	}

	cases := []testCase{
		{name: "empty buffer", buf: nil, want: nil},
		{name: "single zero byte", buf: []byte{0}, want: nil},
		{name: "all-zero buffer", buf: []byte{0, 0, 0, 0}, want: nil},
		{name: "bit zero", buf: []byte{0b0000_0001}, want: []int{0}},
		{name: "bit seven", buf: []byte{0b1000_0000}, want: []int{7}},
		{name: "first and last bit", buf: []byte{0b1000_0001}, want: []int{0, 7}},
		{name: "later byte offsets by eight", buf: []byte{0, 0b1000_0001, 0}, want: []int{8, 15}},
		{name: "dense byte", buf: []byte{0b1111_1111}, want: []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{name: "bits across bytes ascend", buf: []byte{0b0001_0000, 0b0000_0110}, want: []int{4, 9, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Indices(tc.buf))
		})
	}
}

func TestDecoderIsFused(t *testing.T) {
	d := New([]byte{0b0000_0010})

	pos, ok := d.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	for i := 0; i < 3; i++ {
		_, ok := d.Next()
		assert.False(t, ok)
	}
}
