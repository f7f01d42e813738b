package evdev

import (
	"unsafe"

	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/bitmask"
	"github.com/evkit/evkit/internal/ioctl"
)

// bitsChunkSize is the step the capability scratch buffer grows by.
const bitsChunkSize = 1024

// growEventBits runs the fits-exactly growth loop: query with an initial
// capacity, trust the kernel-reported byte count to truncate when it is below
// the capacity, and regrow when the count fills the buffer completely (a full
// buffer cannot be told apart from a truncated one).
func growEventBits(query func(buf []byte) (int, error)) ([]byte, error) {
	size := bitsChunkSize
	for {
		buf := make([]byte, size)
		n, err := query(buf)
		if err != nil {
			return nil, err
		}
		if n < len(buf) {
			return buf[:n], nil
		}
		size += bitsChunkSize
	}
}

func (d *Device) eventBitsBuffer(kind input.EventKind) ([]byte, error) {
	return growEventBits(func(buf []byte) (int, error) {
		req := ioctl.IOR('E', nrEventBitsBase+uintptr(kind), uintptr(len(buf)))
		return ioctl.Submit(d.fd, "EVIOCGBIT", req, unsafe.Pointer(&buf[0]))
	})
}

// EventBitsOf queries the capability bitmask for the event kind belonging to
// code type C and returns the supported codes in ascending order.
func EventBitsOf[C input.CapabilityCode](d *Device) ([]C, error) {
	buf, err := d.eventBitsBuffer(input.KindOf[C]())
	if err != nil {
		return nil, err
	}
	var out []C
	for _, pos := range bitmask.Indices(buf) {
		out = append(out, C(pos))
	}
	return out, nil
}

// AbsAxisBits enumerates the supported absolute axes together with their
// calibration, one EVIOCGABS query per discovered axis.
func (d *Device) AbsAxisBits() ([]input.AbsoluteAxisBit, error) {
	axes, err := EventBitsOf[input.AbsoluteAxis](d)
	if err != nil {
		return nil, err
	}
	var out []input.AbsoluteAxisBit
	for _, axis := range axes {
		info, err := d.AbsInfo(axis)
		if err != nil {
			return nil, err
		}
		out = append(out, input.AbsoluteAxisBit{
			Axis:           axis,
			InitialValue:   info.Value,
			Minimum:        info.Minimum,
			Maximum:        info.Maximum,
			NoiseThreshold: info.NoiseThreshold,
			Deadzone:       info.Deadzone,
			Resolution:     info.Resolution,
		})
	}
	return out, nil
}

// EventBits enumerates the device's key, relative-axis and absolute-axis
// capabilities as one descriptor sequence, in a shape VirtualDevice creation
// accepts directly.
func (d *Device) EventBits() ([]input.EventBit, error) {
	var out []input.EventBit

	keys, err := EventBitsOf[input.Key](d)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		out = append(out, input.KeyBit{Key: key})
	}

	relAxes, err := EventBitsOf[input.RelativeAxis](d)
	if err != nil {
		return nil, err
	}
	for _, axis := range relAxes {
		out = append(out, input.RelativeAxisBit{Axis: axis})
	}

	absBits, err := d.AbsAxisBits()
	if err != nil {
		return nil, err
	}
	for _, bit := range absBits {
		out = append(out, bit)
	}

	return out, nil
}
