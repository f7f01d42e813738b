// Package ioctl encodes Linux ioctl request numbers and submits them against
// open file descriptors. The bit layout follows include/asm-generic/ioctl.h:
// 8 bits request number, 8 bits type, 14 bits size, 2 bits direction. Request
// numbering is kernel ABI and must not be altered.
package ioctl

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/evkit/evkit/input"
)

type direction uintptr

const (
	dirNone  direction = 0
	dirWrite direction = 1
	dirRead  direction = 2

	nrBits   = 8
	typeBits = 8
	sizeBits = 14

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits
)

func ioc(dir direction, typ, nr, size uintptr) uintptr {
	return uintptr(dir)<<dirShift | typ<<typeShift | nr<<nrShift | size<<sizeShift
}

// IO encodes a request that transfers no data (the _IO macro).
func IO(typ, nr uintptr) uintptr {
	return ioc(dirNone, typ, nr, 0)
}

// IOR encodes a read request of the given payload size (the _IOR macro).
func IOR(typ, nr, size uintptr) uintptr {
	return ioc(dirRead, typ, nr, size)
}

// IOW encodes a write request of the given payload size (the _IOW macro).
func IOW(typ, nr, size uintptr) uintptr {
	return ioc(dirWrite, typ, nr, size)
}

// IOWR encodes a read-write request of the given payload size (the _IOWR
// macro).
func IOWR(typ, nr, size uintptr) uintptr {
	return ioc(dirRead|dirWrite, typ, nr, size)
}

// Submit issues req against fd with a pointer argument and returns the
// syscall result. Several evdev requests encode meaning in the result (byte
// counts for capability queries), so it is surfaced rather than discarded.
// Failures come back as *input.ControlError carrying op.
func Submit(fd int, op string, req uintptr, arg unsafe.Pointer) (int, error) {
	res, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return 0, &input.ControlError{Op: op, Errno: errno}
	}
	return int(res), nil
}

// SubmitInt issues req against fd with an immediate integer argument, the
// shape the UI_SET_* and EVIOCGRAB family expects.
func SubmitInt(fd int, op string, req uintptr, value int) (int, error) {
	res, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(value))
	if errno != 0 {
		return 0, &input.ControlError{Op: op, Errno: errno}
	}
	return int(res), nil
}

// GetString issues a string-returning read request (device name, physical
// location, sysname). The kernel reports the string length including the
// trailing NUL, which is trimmed off.
func GetString(fd int, op string, typ, nr uintptr) (string, error) {
	var buf [1024]byte
	n, err := Submit(fd, op, IOR(typ, nr, uintptr(len(buf))), unsafe.Pointer(&buf[0]))
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return "", nil
	}
	return string(buf[:n-1]), nil
}
