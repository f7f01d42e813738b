package uinput

import (
	"errors"
	"fmt"
)

// ErrNameTooLong rejects device names that don't fit the 80-byte on-wire name
// field with its NUL terminator. Checked before any kernel interaction.
var ErrNameTooLong = errors.New("device name too long")

// CreatePhase identifies which phase of Create failed, so callers can tell a
// pre-flight failure from a kernel rejection.
type CreatePhase int

const (
	// PhaseOpen failed opening /dev/uinput.
	PhaseOpen CreatePhase = iota
	// PhaseSetup failed declaring a capability or the device metadata.
	PhaseSetup
	// PhaseActivate failed the final atomic activation.
	PhaseActivate
)

func (p CreatePhase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseSetup:
		return "setup"
	case PhaseActivate:
		return "activate"
	default:
		return fmt.Sprintf("CreatePhase(%d)", int(p))
	}
}

// CreateError reports a failed virtual device creation together with the
// phase that failed.
type CreateError struct {
	Phase CreatePhase
	Err   error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create virtual device: %s phase: %v", e.Phase, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}
