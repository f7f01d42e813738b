package input

import "fmt"

// EventKind identifies the type slot of struct input_event (EV_* in
// linux/input-event-codes.h). Unnamed values print as hex and survive a
// round trip untouched.
type EventKind uint16

const (
	EventKindSynchronization     EventKind = 0x00
	EventKindKey                 EventKind = 0x01
	EventKindRelativeAxis        EventKind = 0x02
	EventKindAbsoluteAxis        EventKind = 0x03
	EventKindMisc                EventKind = 0x04
	EventKindSwitch              EventKind = 0x05
	EventKindLED                 EventKind = 0x11
	EventKindSound               EventKind = 0x12
	EventKindAutoRepeat          EventKind = 0x14
	EventKindForceFeedback       EventKind = 0x15
	EventKindPower               EventKind = 0x16
	EventKindForceFeedbackStatus EventKind = 0x17
)

var eventKindNames = map[EventKind]string{
	EventKindSynchronization:     "Synchronization",
	EventKindKey:                 "Key",
	EventKindRelativeAxis:        "RelativeAxis",
	EventKindAbsoluteAxis:        "AbsoluteAxis",
	EventKindMisc:                "Misc",
	EventKindSwitch:              "Switch",
	EventKindLED:                 "LED",
	EventKindSound:               "Sound",
	EventKindAutoRepeat:          "AutoRepeat",
	EventKindForceFeedback:       "ForceFeedback",
	EventKindPower:               "Power",
	EventKindForceFeedbackStatus: "ForceFeedbackStatus",
}

var eventKindsByName map[string]EventKind

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(k))
}

// EventKindByName resolves a name produced by String back to its code.
func EventKindByName(name string) (EventKind, bool) {
	k, ok := eventKindsByName[name]
	return k, ok
}

// Key is a key or button code (KEY_*/BTN_*).
type Key uint16

const (
	KeyEscape         Key = 1
	KeyDigit1         Key = 2
	KeyDigit2         Key = 3
	KeyDigit3         Key = 4
	KeyDigit4         Key = 5
	KeyDigit5         Key = 6
	KeyDigit6         Key = 7
	KeyDigit7         Key = 8
	KeyDigit8         Key = 9
	KeyDigit9         Key = 10
	KeyDigit0         Key = 11
	KeyMinus          Key = 12
	KeyEqual          Key = 13
	KeyBackspace      Key = 14
	KeyTab            Key = 15
	KeyQ              Key = 16
	KeyW              Key = 17
	KeyE              Key = 18
	KeyR              Key = 19
	KeyT              Key = 20
	KeyY              Key = 21
	KeyU              Key = 22
	KeyI              Key = 23
	KeyO              Key = 24
	KeyP              Key = 25
	KeyLeftBrace      Key = 26
	KeyRightBrace     Key = 27
	KeyEnter          Key = 28
	KeyLeftCtrl       Key = 29
	KeyA              Key = 30
	KeyS              Key = 31
	KeyD              Key = 32
	KeyF              Key = 33
	KeyG              Key = 34
	KeyH              Key = 35
	KeyJ              Key = 36
	KeyK              Key = 37
	KeyL              Key = 38
	KeySemicolon      Key = 39
	KeyApostrophe     Key = 40
	KeyGrave          Key = 41
	KeyLeftShift      Key = 42
	KeyBackslash      Key = 43
	KeyZ              Key = 44
	KeyX              Key = 45
	KeyC              Key = 46
	KeyV              Key = 47
	KeyB              Key = 48
	KeyN              Key = 49
	KeyM              Key = 50
	KeyComma          Key = 51
	KeyDot            Key = 52
	KeySlash          Key = 53
	KeyRightShift     Key = 54
	KeyKeypadAsterisk Key = 55
	KeyLeftAlt        Key = 56
	KeySpace          Key = 57
	KeyCapsLock       Key = 58
	KeyF1             Key = 59
	KeyF2             Key = 60
	KeyF3             Key = 61
	KeyF4             Key = 62
	KeyF5             Key = 63
	KeyF6             Key = 64
	KeyF7             Key = 65
	KeyF8             Key = 66
	KeyF9             Key = 67
	KeyF10            Key = 68
	KeyNumLock        Key = 69
	KeyScrollLock     Key = 70
	KeyKeypad7        Key = 71
	KeyKeypad8        Key = 72
	KeyKeypad9        Key = 73
	KeyKeypadMinus    Key = 74
	KeyKeypad4        Key = 75
	KeyKeypad5        Key = 76
	KeyKeypad6        Key = 77
	KeyKeypadPlus     Key = 78
	KeyKeypad1        Key = 79
	KeyKeypad2        Key = 80
	KeyKeypad3        Key = 81
	KeyKeypad0        Key = 82
	KeyKeypadDot      Key = 83
	KeyF11            Key = 87
	KeyF12            Key = 88
	KeyKeypadEnter    Key = 96
	KeyRightCtrl      Key = 97
	KeyKeypadSlash    Key = 98
	KeySysRq          Key = 99
	KeyRightAlt       Key = 100
	KeyHome           Key = 102
	KeyUp             Key = 103
	KeyPageUp         Key = 104
	KeyLeft           Key = 105
	KeyRight          Key = 106
	KeyEnd            Key = 107
	KeyDown           Key = 108
	KeyPageDown       Key = 109
	KeyInsert         Key = 110
	KeyDelete         Key = 111
	KeyKeypadEqual    Key = 117
	KeyKeypadPlusMin  Key = 118
	KeyPause          Key = 119
	KeyKeypadComma    Key = 121
	KeyLeftMeta       Key = 125
	KeyRightMeta      Key = 126

	KeyMouseLeft   Key = 0x110
	KeyMouseRight  Key = 0x111
	KeyMouseMiddle Key = 0x112
	KeyMouseExtra1 Key = 0x113
	KeyMouseExtra2 Key = 0x114
	KeyMouseExtra3 Key = 0x115
	KeyMouseExtra4 Key = 0x116
	KeyMouseExtra5 Key = 0x117

	// Gamepad buttons, per the kernel gamepad mapping doc.
	KeyPadSouth           Key = 0x130
	KeyPadEast            Key = 0x131
	KeyPadNorth           Key = 0x133
	KeyPadWest            Key = 0x134
	KeyShoulderLeft       Key = 0x136
	KeyShoulderRight      Key = 0x137
	KeyShoulderLeftLower  Key = 0x138
	KeyShoulderRightLower Key = 0x139
	KeySelect             Key = 0x13a
	KeyStart              Key = 0x13b
	KeyHomeButton         Key = 0x13c
	KeyStickLeft          Key = 0x13d
	KeyStickRight         Key = 0x13e
	KeyPadUp              Key = 0x220
	KeyPadDown            Key = 0x221
	KeyPadLeft            Key = 0x222
	KeyPadRight           Key = 0x223

	KeyButtonMisc   Key = 0x100
	KeyTriggerHappy Key = 0x2c0
)

var keyNames = map[Key]string{
	KeyEscape: "Escape", KeyDigit1: "Digit1", KeyDigit2: "Digit2",
	KeyDigit3: "Digit3", KeyDigit4: "Digit4", KeyDigit5: "Digit5",
	KeyDigit6: "Digit6", KeyDigit7: "Digit7", KeyDigit8: "Digit8",
	KeyDigit9: "Digit9", KeyDigit0: "Digit0", KeyMinus: "Minus",
	KeyEqual: "Equal", KeyBackspace: "Backspace", KeyTab: "Tab",
	KeyQ: "Q", KeyW: "W", KeyE: "E", KeyR: "R", KeyT: "T", KeyY: "Y",
	KeyU: "U", KeyI: "I", KeyO: "O", KeyP: "P",
	KeyLeftBrace: "LeftBrace", KeyRightBrace: "RightBrace", KeyEnter: "Enter",
	KeyLeftCtrl: "LeftCtrl",
	KeyA:        "A", KeyS: "S", KeyD: "D", KeyF: "F", KeyG: "G", KeyH: "H",
	KeyJ: "J", KeyK: "K", KeyL: "L",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe", KeyGrave: "Grave",
	KeyLeftShift: "LeftShift", KeyBackslash: "Backslash",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B", KeyN: "N", KeyM: "M",
	KeyComma: "Comma", KeyDot: "Dot", KeySlash: "Slash",
	KeyRightShift: "RightShift", KeyKeypadAsterisk: "KeypadAsterisk",
	KeyLeftAlt: "LeftAlt", KeySpace: "Space", KeyCapsLock: "CapsLock",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyNumLock: "NumLock", KeyScrollLock: "ScrollLock",
	KeyKeypad7: "Keypad7", KeyKeypad8: "Keypad8", KeyKeypad9: "Keypad9",
	KeyKeypadMinus: "KeypadMinus",
	KeyKeypad4:     "Keypad4", KeyKeypad5: "Keypad5", KeyKeypad6: "Keypad6",
	KeyKeypadPlus: "KeypadPlus",
	KeyKeypad1:    "Keypad1", KeyKeypad2: "Keypad2", KeyKeypad3: "Keypad3",
	KeyKeypad0: "Keypad0", KeyKeypadDot: "KeypadDot",
	KeyF11: "F11", KeyF12: "F12", KeyKeypadEnter: "KeypadEnter",
	KeyRightCtrl: "RightCtrl", KeyKeypadSlash: "KeypadSlash", KeySysRq: "SysRq",
	KeyRightAlt: "RightAlt", KeyHome: "Home", KeyUp: "Up", KeyPageUp: "PageUp",
	KeyLeft: "Left", KeyRight: "Right", KeyEnd: "End", KeyDown: "Down",
	KeyPageDown: "PageDown", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyKeypadEqual: "KeypadEqual", KeyKeypadPlusMin: "KeypadPlusMinus",
	KeyPause: "Pause", KeyKeypadComma: "KeypadComma",
	KeyLeftMeta: "LeftMeta", KeyRightMeta: "RightMeta",
	KeyMouseLeft: "MouseLeft", KeyMouseRight: "MouseRight",
	KeyMouseMiddle: "MouseMiddle", KeyMouseExtra1: "MouseExtra1",
	KeyMouseExtra2: "MouseExtra2", KeyMouseExtra3: "MouseExtra3",
	KeyMouseExtra4: "MouseExtra4", KeyMouseExtra5: "MouseExtra5",
	KeyPadSouth: "PadSouth", KeyPadEast: "PadEast", KeyPadNorth: "PadNorth",
	KeyPadWest: "PadWest", KeyShoulderLeft: "ShoulderLeft",
	KeyShoulderRight:     "ShoulderRight",
	KeyShoulderLeftLower: "ShoulderLeftLower",
	KeyShoulderRightLower: "ShoulderRightLower",
	KeySelect: "Select", KeyStart: "Start", KeyHomeButton: "HomeButton",
	KeyStickLeft: "StickLeft", KeyStickRight: "StickRight",
	KeyPadUp: "PadUp", KeyPadDown: "PadDown", KeyPadLeft: "PadLeft",
	KeyPadRight:   "PadRight",
	KeyButtonMisc: "ButtonMisc", KeyTriggerHappy: "TriggerHappy",
}

var keysByName map[string]Key

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(k))
}

// KeyByName resolves a name produced by String back to its code.
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// RelativeAxis is a relative-axis code (REL_*).
type RelativeAxis uint16

const (
	RelativeAxisX          RelativeAxis = 0
	RelativeAxisY          RelativeAxis = 1
	RelativeAxisZ          RelativeAxis = 2
	RelativeAxisRX         RelativeAxis = 3
	RelativeAxisRY         RelativeAxis = 4
	RelativeAxisRZ         RelativeAxis = 5
	RelativeAxisWheel      RelativeAxis = 8
	RelativeAxisWheelHiRes RelativeAxis = 11
)

var relativeAxisNames = map[RelativeAxis]string{
	RelativeAxisX: "X", RelativeAxisY: "Y", RelativeAxisZ: "Z",
	RelativeAxisRX: "RX", RelativeAxisRY: "RY", RelativeAxisRZ: "RZ",
	RelativeAxisWheel: "Wheel", RelativeAxisWheelHiRes: "WheelHiRes",
}

var relativeAxesByName map[string]RelativeAxis

func (a RelativeAxis) String() string {
	if name, ok := relativeAxisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(a))
}

// RelativeAxisByName resolves a name produced by String back to its code.
func RelativeAxisByName(name string) (RelativeAxis, bool) {
	a, ok := relativeAxesByName[name]
	return a, ok
}

// AbsoluteAxis is an absolute-axis code (ABS_*).
type AbsoluteAxis uint16

const (
	AbsoluteAxisX     AbsoluteAxis = 0
	AbsoluteAxisY     AbsoluteAxis = 1
	AbsoluteAxisZ     AbsoluteAxis = 2
	AbsoluteAxisRX    AbsoluteAxis = 3
	AbsoluteAxisRY    AbsoluteAxis = 4
	AbsoluteAxisRZ    AbsoluteAxis = 5
	AbsoluteAxisHat0X AbsoluteAxis = 16
	AbsoluteAxisHat0Y AbsoluteAxis = 17
	AbsoluteAxisHat1X AbsoluteAxis = 18
	AbsoluteAxisHat1Y AbsoluteAxis = 19
	AbsoluteAxisHat2X AbsoluteAxis = 20
	AbsoluteAxisHat2Y AbsoluteAxis = 21
	AbsoluteAxisMisc  AbsoluteAxis = 40
)

var absoluteAxisNames = map[AbsoluteAxis]string{
	AbsoluteAxisX: "X", AbsoluteAxisY: "Y", AbsoluteAxisZ: "Z",
	AbsoluteAxisRX: "RX", AbsoluteAxisRY: "RY", AbsoluteAxisRZ: "RZ",
	AbsoluteAxisHat0X: "Hat0X", AbsoluteAxisHat0Y: "Hat0Y",
	AbsoluteAxisHat1X: "Hat1X", AbsoluteAxisHat1Y: "Hat1Y",
	AbsoluteAxisHat2X: "Hat2X", AbsoluteAxisHat2Y: "Hat2Y",
	AbsoluteAxisMisc: "Misc",
}

var absoluteAxesByName map[string]AbsoluteAxis

func (a AbsoluteAxis) String() string {
	if name, ok := absoluteAxisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(a))
}

// AbsoluteAxisByName resolves a name produced by String back to its code.
func AbsoluteAxisByName(name string) (AbsoluteAxis, bool) {
	a, ok := absoluteAxesByName[name]
	return a, ok
}

// Bus identifies the bus a device is attached to (BUS_* in linux/input.h).
type Bus uint16

const (
	BusPCI       Bus = 0x01
	BusUSB       Bus = 0x03
	BusHIL       Bus = 0x04
	BusBluetooth Bus = 0x05
	BusVirtual   Bus = 0x06
	BusISA       Bus = 0x10
	BusHost      Bus = 0x19
)

var busNames = map[Bus]string{
	BusPCI: "PCI", BusUSB: "USB", BusHIL: "HIL",
	BusBluetooth: "Bluetooth", BusVirtual: "Virtual",
	BusISA: "ISA", BusHost: "Host",
}

var busesByName map[string]Bus

func (b Bus) String() string {
	if name, ok := busNames[b]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(b))
}

// BusByName resolves a name produced by String back to its code.
func BusByName(name string) (Bus, bool) {
	b, ok := busesByName[name]
	return b, ok
}

// ForceFeedback is a force feedback capability code: an effect family
// (FF_RUMBLE..FF_RAMP) or a device property (FF_GAIN, FF_AUTOCENTER).
type ForceFeedback uint16

const (
	ForceFeedbackRumble     ForceFeedback = 0x50
	ForceFeedbackPeriodic   ForceFeedback = 0x51
	ForceFeedbackConstant   ForceFeedback = 0x52
	ForceFeedbackSpring     ForceFeedback = 0x53
	ForceFeedbackFriction   ForceFeedback = 0x54
	ForceFeedbackDamper     ForceFeedback = 0x55
	ForceFeedbackInertia    ForceFeedback = 0x56
	ForceFeedbackRamp       ForceFeedback = 0x57
	ForceFeedbackGain       ForceFeedback = 0x60
	ForceFeedbackAutocenter ForceFeedback = 0x61
)

var forceFeedbackNames = map[ForceFeedback]string{
	ForceFeedbackRumble:     "Rumble",
	ForceFeedbackPeriodic:   "Periodic",
	ForceFeedbackConstant:   "Constant",
	ForceFeedbackSpring:     "Spring",
	ForceFeedbackFriction:   "Friction",
	ForceFeedbackDamper:     "Damper",
	ForceFeedbackInertia:    "Inertia",
	ForceFeedbackRamp:       "Ramp",
	ForceFeedbackGain:       "Gain",
	ForceFeedbackAutocenter: "Autocenter",
}

var forceFeedbacksByName map[string]ForceFeedback

func (f ForceFeedback) String() string {
	if name, ok := forceFeedbackNames[f]; ok {
		return name
	}
	return fmt.Sprintf("0x%03X", uint16(f))
}

// ForceFeedbackByName resolves a name produced by String back to its code.
func ForceFeedbackByName(name string) (ForceFeedback, bool) {
	f, ok := forceFeedbacksByName[name]
	return f, ok
}

func (Key) capabilityKind() EventKind           { return EventKindKey }
func (RelativeAxis) capabilityKind() EventKind  { return EventKindRelativeAxis }
func (AbsoluteAxis) capabilityKind() EventKind  { return EventKindAbsoluteAxis }
func (ForceFeedback) capabilityKind() EventKind { return EventKindForceFeedback }

// CapabilityCode is the set of code types a capability bitmask query can
// enumerate. Each code type knows which event kind its bitmask belongs to.
type CapabilityCode interface {
	~uint16
	capabilityKind() EventKind
}

// KindOf reports the event kind whose capability bitmask holds codes of type C.
func KindOf[C CapabilityCode]() EventKind {
	var zero C
	return zero.capabilityKind()
}

func init() {
	eventKindsByName = make(map[string]EventKind, len(eventKindNames))
	for k, name := range eventKindNames {
		eventKindsByName[name] = k
	}
	keysByName = make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		keysByName[name] = k
	}
	relativeAxesByName = make(map[string]RelativeAxis, len(relativeAxisNames))
	for a, name := range relativeAxisNames {
		relativeAxesByName[name] = a
	}
	absoluteAxesByName = make(map[string]AbsoluteAxis, len(absoluteAxisNames))
	for a, name := range absoluteAxisNames {
		absoluteAxesByName[name] = a
	}
	busesByName = make(map[string]Bus, len(busNames))
	for b, name := range busNames {
		busesByName[name] = b
	}
	forceFeedbacksByName = make(map[string]ForceFeedback, len(forceFeedbackNames))
	for f, name := range forceFeedbackNames {
		forceFeedbacksByName[name] = f
	}
}
