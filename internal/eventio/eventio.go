// Package eventio provides the poll-then-syscall read/write path shared by
// physical and virtual devices: a signal-tolerant readiness wait and framed
// transfer of single fixed-size event records.
package eventio

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/input"
)

// Block makes Wait and ReadEvent wait indefinitely for readiness.
const Block time.Duration = -1

// Wait blocks until fd is readable or the timeout elapses. A negative
// timeout blocks indefinitely; zero performs a non-blocking check. A wait
// interrupted by signal delivery is reported as not-ready, never as an error
// or as readiness, so callers simply re-poll. Readiness means data is
// available or the peer hung up.
func Wait(fd int, timeout time.Duration) (bool, error) {
	var ts *unix.Timespec
	if timeout >= 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	// A nil sigmask keeps the current signal mask; the kernel rejects a
	// non-nil mask because x/sys passes a zero sigsetsize to ppoll(2).
	n, err := unix.Ppoll(fds, ts, nil)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, fmt.Errorf("ppoll: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
}

// ReadEvent waits for readiness, then performs exactly one fixed-size read.
// A zero-byte read after a ready signal means no event was actually available
// and is reported as comma-ok false. A non-zero short read would leave the
// stream misaligned on a record boundary and fails with input.ErrFraming.
func ReadEvent(fd int, timeout time.Duration) (input.RawEvent, bool, error) {
	var raw input.RawEvent

	ready, err := Wait(fd, timeout)
	if err != nil || !ready {
		return raw, false, err
	}

	buf := make([]byte, input.RawEventSize)
	n, err := unix.Read(fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return raw, false, nil
		}
		return raw, false, fmt.Errorf("read event: %w", err)
	}
	if n == 0 {
		return raw, false, nil
	}
	if n != input.RawEventSize {
		return raw, false, fmt.Errorf("read %d of %d event bytes: %w", n, input.RawEventSize, input.ErrFraming)
	}

	if err := raw.UnmarshalBinary(buf); err != nil {
		return raw, false, err
	}
	return raw, true, nil
}

// WriteEvent transfers one record in a single write. The kernel consumes
// whole records only, so a short write fails with input.ErrFraming.
func WriteEvent(fd int, raw input.RawEvent) error {
	buf, err := raw.MarshalBinary()
	if err != nil {
		return err
	}
	n, err := unix.Write(fd, buf)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("wrote %d of %d event bytes: %w", n, len(buf), input.ErrFraming)
	}
	return nil
}
