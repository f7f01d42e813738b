package input

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrFraming reports a short transfer of a fixed-size record. This is a
// consistency violation, not an ordinary I/O error: a partial record
// desynchronizes the kernel's ring-buffer framing, so callers must not
// continue reading or writing on the handle.
var ErrFraming = errors.New("short transfer of a fixed-size input record")

// ErrAxisRange reports an absolute-axis descriptor whose maximum is below its
// minimum.
var ErrAxisRange = errors.New("absolute axis maximum below minimum")

// ControlError is a failed control request against an open device handle. Op
// names the kernel request; Errno is the OS error it returned.
type ControlError struct {
	Op    string
	Errno syscall.Errno
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Errno)
}

func (e *ControlError) Unwrap() error {
	return e.Errno
}
