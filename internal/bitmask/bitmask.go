// Package bitmask decodes kernel capability bitmasks: byte buffers whose set
// bits mark the event codes a device supports for one event kind.
package bitmask

// Decoder yields the set-bit positions of a byte buffer in ascending order.
// It scans bytes left to right and strips the lowest set bit of the current
// byte until it is exhausted, so bit N of byte I comes out as I*8+N. Once
// drained it stays drained.
type Decoder struct {
	buf   []byte
	index int
	bit   int
	cur   byte
}

// New returns a decoder over buf. The buffer is not copied; callers must not
// mutate it while decoding.
func New(buf []byte) *Decoder {
	d := &Decoder{buf: buf}
	if len(buf) > 0 {
		d.cur = buf[0]
	}
	return d
}

// Next returns the next set-bit position, or false when the buffer is
// exhausted.
func (d *Decoder) Next() (int, bool) {
	for d.cur == 0 {
		if d.index+1 >= len(d.buf) {
			return 0, false
		}
		d.index++
		d.cur = d.buf[d.index]
		d.bit = 0
	}

	for d.cur&1 == 0 {
		d.cur >>= 1
		d.bit++
	}

	pos := d.index*8 + d.bit
	d.cur >>= 1
	d.bit++
	return pos, true
}

// Indices collects every set-bit position of buf in ascending order.
func Indices(buf []byte) []int {
	var out []int
	d := New(buf)
	for {
		pos, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}
