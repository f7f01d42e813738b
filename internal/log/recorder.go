package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/evkit/evkit/input"
)

// RawRecorder dumps raw 24-byte event records as they cross a device handle.
// Useful for diffing against evtest output or kernel traces.
type RawRecorder interface {
	// Record logs one wire record; label identifies the stream
	// (e.g. "read", "emit").
	Record(label string, raw input.RawEvent)
}

// NewRecorder returns a recorder writing hex dumps to w. A nil writer yields
// a no-op recorder, so call sites never need a nil check.
func NewRecorder(w io.Writer) RawRecorder {
	return &rawRecorder{w: w}
}

type rawRecorder struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *rawRecorder) Record(label string, raw input.RawEvent) {
	if r.w == nil {
		return
	}
	data, err := raw.MarshalBinary()
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%-5s %x  kind=%s code=%d value=%d\n",
		label, data, input.EventKind(raw.Kind), raw.Code, raw.Value)
}
