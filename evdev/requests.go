package evdev

import (
	"github.com/evkit/evkit/input"
	"github.com/evkit/evkit/internal/ioctl"
)

// evdev control requests ('E' type), per linux/input.h. The numbering and
// transfer direction are kernel ABI.
var (
	eviocgVersion = ioctl.IOR('E', 0x01, 4)
	eviocgID      = ioctl.IOR('E', 0x02, 8)
	eviocsFF      = ioctl.IOW('E', 0x80, input.EffectSize)
	eviocrmFF     = ioctl.IOW('E', 0x81, 4)
	eviocgEffects = ioctl.IOR('E', 0x84, 4)
	eviocGrab     = ioctl.IOW('E', 0x90, 4)
	eviocsClockID = ioctl.IOW('E', 0xa0, 4)
)

const (
	// String queries share the 'E' type with sequential numbers; the
	// request size is supplied by ioctl.GetString.
	nrName             = 0x06
	nrPhysicalLocation = 0x07
	nrUniqueID         = 0x08

	// EVIOCGBIT(kind, len) and EVIOCGABS(axis) offset the request number
	// by the queried code.
	nrEventBitsBase = 0x20
	nrAbsInfoBase   = 0x40
)

// absInfoSize is the size of struct input_absinfo.
const absInfoSize = 24
