// Package indicator drives the dash-pattern LEDs and the sidetone with
// hardware abstraction. Output is fire-and-forget: errors are reported to
// the caller for logging but never feed back into decoding.
package indicator

// Driver shows decoded feedback on external hardware.
type Driver interface {
	// ShowPattern lights one LED per symbol slot: ON for a Dash, OFF for
	// a Dot or an unused slot. Slots beyond the available LEDs are
	// ignored.
	ShowPattern(slots []bool) error

	// SetTone switches the sidetone while the key is down.
	SetTone(on bool) error

	// Close turns everything off and releases resources.
	Close() error
}

// Default pin assignments (BCM numbering).
var DefaultLEDPins = []int{5, 6, 13, 19, 26, 21}

// DefaultPinTone is the sidetone buzzer pin.
const DefaultPinTone = 12

// DefaultToneHz is the sidetone frequency passed through to hardware that
// accepts one. The stock active buzzer module fixes its own frequency and
// ignores it.
const DefaultToneHz = 700
