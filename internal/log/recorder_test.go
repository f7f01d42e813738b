package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evkit/evkit/input"
)

func TestRecorderWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	rec.Record("read", input.RawEvent{
		Kind:  uint16(input.EventKindKey),
		Code:  uint16(input.KeyA),
		Value: 1,
	})
	rec.Record("emit", input.RawEvent{
		Kind: uint16(input.EventKindSynchronization),
	})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "read")
	assert.Contains(t, string(lines[0]), "kind=Key")
	assert.Contains(t, string(lines[1]), "emit")
}

func TestRecorderNilWriterIsNoOp(t *testing.T) {
	rec := NewRecorder(nil)
	assert.NotPanics(t, func() {
		rec.Record("read", input.RawEvent{})
	})
}
