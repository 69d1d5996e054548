// Package input reads the raw key state with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package input

// Reader reads the logical key state.
type Reader interface {
	// Read returns true while the key is held down. The switch line and
	// the light-sensor comparator line are OR-combined into this single
	// logical state.
	Read() (bool, error)

	// Close releases input resources.
	Close() error
}

// Default pin assignments (BCM numbering).
const (
	DefaultPinSwitch = 17 // momentary switch, wired to ground, active low
	DefaultPinLight  = 27 // light-sensor comparator output, active high
)
