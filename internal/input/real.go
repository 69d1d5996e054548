//go:build linux

package input

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads the key from actual hardware using the Linux GPIO
// character device.
type RealReader struct {
	chip      *gpiocdev.Chip
	switchPin *gpiocdev.Line
	lightPin  *gpiocdev.Line
}

// NewRealReader creates a key reader for actual Raspberry Pi hardware.
// The switch line is pulled up and reads active low; the light-sensor
// comparator line reads active high.
func NewRealReader(pinSwitch, pinLight int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	switchLine, err := chip.RequestLine(pinSwitch, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request switch pin %d: %w", pinSwitch, err)
	}

	lightLine, err := chip.RequestLine(pinLight, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		switchLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request light pin %d: %w", pinLight, err)
	}

	return &RealReader{
		chip:      chip,
		switchPin: switchLine,
		lightPin:  lightLine,
	}, nil
}

// Read returns true while either source asserts the key.
// The switch is inverted (pull-up, pressed pulls the line to ground); the
// light-sensor comparator is already active high.
func (r *RealReader) Read() (bool, error) {
	swRaw, err := r.switchPin.Value()
	if err != nil {
		return false, fmt.Errorf("read switch pin: %w", err)
	}

	lightRaw, err := r.lightPin.Value()
	if err != nil {
		return false, fmt.Errorf("read light pin: %w", err)
	}

	return swRaw == 0 || lightRaw == 1, nil
}

// Close releases GPIO resources.
// Reconfigures pins to input with pull-down (matching Pi boot defaults)
// before closing to ensure clean state for system shutdown/reboot.
func (r *RealReader) Close() error {
	var errs []error

	if r.switchPin != nil {
		if err := r.switchPin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure switch pin: %w", err))
		}
		if err := r.switchPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close switch pin: %w", err))
		}
	}
	if r.lightPin != nil {
		if err := r.lightPin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure light pin: %w", err))
		}
		if err := r.lightPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close light pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
