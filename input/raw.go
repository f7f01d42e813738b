// Package input defines the semantic model for Linux input-subsystem events:
// wire-level records, the decoded event variants, device capability
// descriptors and the force feedback effect model shared by the evdev and
// uinput packages.
package input

import (
	"encoding/binary"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// RawEventSize is the size of struct input_event on 64-bit Linux.
const RawEventSize = 24

// Timestamp mirrors the timeval half of struct input_event. Devices opened by
// this module are switched to CLOCK_MONOTONIC, so timestamps are comparable
// across reads and unaffected by wall-clock adjustment.
type Timestamp struct {
	Sec  int64
	Usec int64
}

// Now reads the current time from CLOCK_MONOTONIC, the same clock the kernel
// stamps events with.
func Now() (Timestamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Sec: ts.Sec, Usec: ts.Nsec / 1000}, nil
}

// Sub returns the duration elapsed between o and t.
func (t Timestamp) Sub(o Timestamp) time.Duration {
	return t.duration() - o.duration()
}

func (t Timestamp) duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Usec)*time.Microsecond
}

// Seconds returns the timestamp as fractional seconds.
func (t Timestamp) Seconds() float64 {
	return float64(t.Sec) + float64(t.Usec)/1e6
}

// RawEvent is the bit-exact form of struct input_event:
//
//	 0-7:  tv_sec  (int64, native endian)
//	 8-15: tv_usec (int64, native endian)
//	16-17: type    (uint16)
//	18-19: code    (uint16)
//	20-23: value   (int32)
//
// Kernel structs are host-endian, so the codec uses binary.NativeEndian.
type RawEvent struct {
	Time  Timestamp
	Kind  uint16
	Code  uint16
	Value int32
}

// MarshalBinary encodes the event into its RawEventSize-byte wire form.
func (e RawEvent) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RawEventSize)
	binary.NativeEndian.PutUint64(buf[0:8], uint64(e.Time.Sec))
	binary.NativeEndian.PutUint64(buf[8:16], uint64(e.Time.Usec))
	binary.NativeEndian.PutUint16(buf[16:18], e.Kind)
	binary.NativeEndian.PutUint16(buf[18:20], e.Code)
	binary.NativeEndian.PutUint32(buf[20:24], uint32(e.Value))
	return buf, nil
}

// UnmarshalBinary decodes one wire record. Buffers shorter than RawEventSize
// are rejected with io.ErrUnexpectedEOF.
func (e *RawEvent) UnmarshalBinary(data []byte) error {
	if len(data) < RawEventSize {
		return io.ErrUnexpectedEOF
	}
	e.Time.Sec = int64(binary.NativeEndian.Uint64(data[0:8]))
	e.Time.Usec = int64(binary.NativeEndian.Uint64(data[8:16]))
	e.Kind = binary.NativeEndian.Uint16(data[16:18])
	e.Code = binary.NativeEndian.Uint16(data[18:20])
	e.Value = int32(binary.NativeEndian.Uint32(data[20:24]))
	return nil
}
