package input

import "fmt"

// DeviceID is the immutable identity of a device, mirroring struct input_id.
type DeviceID struct {
	Bus     Bus
	Vendor  uint16
	Product uint16
	Version uint16
}

func (id DeviceID) String() string {
	return fmt.Sprintf("bus %s vendor 0x%04x product 0x%04x version 0x%04x",
		id.Bus, id.Vendor, id.Product, id.Version)
}

// AbsInfo mirrors struct input_absinfo, the calibration record the kernel
// keeps per absolute axis.
type AbsInfo struct {
	// Value is the latest reported value for the axis.
	Value int32
	// Minimum and Maximum bound the reported values.
	Minimum int32
	Maximum int32
	// NoiseThreshold is the fuzz value used to filter noise.
	NoiseThreshold int32
	Deadzone       int32
	// Resolution of the reported values, in units per millimeter
	// (or units per radian for rotational axes).
	Resolution int32
}

// EventBit is the closed set of capability descriptors a device can carry:
// one variant per declarable event kind.
type EventBit interface {
	isEventBit()
}

// KeyBit declares support for a key or button.
type KeyBit struct {
	Key Key
}

// RelativeAxisBit declares support for a relative axis.
type RelativeAxisBit struct {
	Axis RelativeAxis
}

// AbsoluteAxisBit declares support for an absolute axis together with its
// calibration data.
type AbsoluteAxisBit struct {
	Axis           AbsoluteAxis
	InitialValue   int32
	Minimum        int32
	Maximum        int32
	NoiseThreshold int32
	Deadzone       int32
	Resolution     int32
}

// Validate rejects descriptors whose range is inverted. Ranges are never
// silently swapped.
func (b AbsoluteAxisBit) Validate() error {
	if b.Maximum < b.Minimum {
		return fmt.Errorf("axis %s: maximum %d < minimum %d: %w",
			b.Axis, b.Maximum, b.Minimum, ErrAxisRange)
	}
	return nil
}

// ForceFeedbackBit declares support for a force feedback effect family or
// property.
type ForceFeedbackBit struct {
	Effect ForceFeedback
}

func (KeyBit) isEventBit()           {}
func (RelativeAxisBit) isEventBit()  {}
func (AbsoluteAxisBit) isEventBit()  {}
func (ForceFeedbackBit) isEventBit() {}
