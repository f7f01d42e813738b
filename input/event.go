package input

// Event is one decoded input record. The timestamp is a read-only attribute
// of events consumed from the kernel; emission paths always zero it on the
// wire.
type Event struct {
	Time Timestamp
	Body EventBody
}

// EventBody is the closed set of modeled event variants. Exactly one variant
// is active per event; everything the decode rules don't recognize lands in
// Other with kind, code and value preserved verbatim.
type EventBody interface {
	isEventBody()
	raw() (kind EventKind, code uint16, value int32)
}

// KeyPress reports a key going down (value 1).
type KeyPress struct {
	Key Key
}

// KeyRelease reports a key going up (value 0). The kernel's autorepeat
// indicator (value 2) is not modeled and decodes as Other.
type KeyRelease struct {
	Key Key
}

// RelativeMove reports motion on a relative axis.
type RelativeMove struct {
	Axis  RelativeAxis
	Delta int32
}

// AbsoluteMove reports a new position on an absolute axis.
type AbsoluteMove struct {
	Axis     AbsoluteAxis
	Position int32
}

// Flush marks the end of one logical batch of input reports (SYN_REPORT).
type Flush struct{}

// Dropped signals a kernel ring-buffer overrun (SYN_DROPPED); events between
// the last Flush and this marker were lost.
type Dropped struct{}

// Other carries any record the decode rules don't model.
type Other struct {
	Kind  EventKind
	Code  uint16
	Value int32
}

func (KeyPress) isEventBody()     {}
func (KeyRelease) isEventBody()   {}
func (RelativeMove) isEventBody() {}
func (AbsoluteMove) isEventBody() {}
func (Flush) isEventBody()        {}
func (Dropped) isEventBody()      {}
func (Other) isEventBody()        {}

func (b KeyPress) raw() (EventKind, uint16, int32) {
	return EventKindKey, uint16(b.Key), 1
}

func (b KeyRelease) raw() (EventKind, uint16, int32) {
	return EventKindKey, uint16(b.Key), 0
}

func (b RelativeMove) raw() (EventKind, uint16, int32) {
	return EventKindRelativeAxis, uint16(b.Axis), b.Delta
}

func (b AbsoluteMove) raw() (EventKind, uint16, int32) {
	return EventKindAbsoluteAxis, uint16(b.Axis), b.Position
}

func (Flush) raw() (EventKind, uint16, int32) {
	return EventKindSynchronization, 0, 0
}

func (Dropped) raw() (EventKind, uint16, int32) {
	return EventKindSynchronization, 3, 0
}

func (b Other) raw() (EventKind, uint16, int32) {
	return b.Kind, b.Code, b.Value
}

// EventFromRaw decodes one wire record into its semantic variant.
func EventFromRaw(raw RawEvent) Event {
	kind := EventKind(raw.Kind)
	var body EventBody
	switch {
	case kind == EventKindKey && raw.Value == 1:
		body = KeyPress{Key: Key(raw.Code)}
	case kind == EventKindKey && raw.Value == 0:
		body = KeyRelease{Key: Key(raw.Code)}
	case kind == EventKindRelativeAxis:
		body = RelativeMove{Axis: RelativeAxis(raw.Code), Delta: raw.Value}
	case kind == EventKindAbsoluteAxis:
		body = AbsoluteMove{Axis: AbsoluteAxis(raw.Code), Position: raw.Value}
	case kind == EventKindSynchronization && raw.Code == 0 && raw.Value == 0:
		body = Flush{}
	case kind == EventKindSynchronization && raw.Code == 3 && raw.Value == 0:
		body = Dropped{}
	default:
		body = Other{Kind: kind, Code: raw.Code, Value: raw.Value}
	}
	return Event{Time: raw.Time, Body: body}
}

// Raw encodes the event back into its wire form, timestamp included.
func (e Event) Raw() RawEvent {
	raw := RawEventOf(e.Body)
	raw.Time = e.Time
	return raw
}

// RawEventOf encodes a body into an outgoing wire record. The timestamp is
// left zero: it belongs to the kernel, not the producer.
func RawEventOf(body EventBody) RawEvent {
	kind, code, value := body.raw()
	return RawEvent{Kind: uint16(kind), Code: code, Value: value}
}
