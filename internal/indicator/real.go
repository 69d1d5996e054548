//go:build linux

package indicator

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealDriver drives LED and buzzer lines through the Linux GPIO character
// device.
type RealDriver struct {
	chip    *gpiocdev.Chip
	ledPins []*gpiocdev.Line
	tonePin *gpiocdev.Line
	toneHz  int
}

// NewRealDriver requests the LED lines and the sidetone line as outputs,
// all initially low. toneHz is the passthrough frequency for tone hardware
// that accepts one.
func NewRealDriver(ledPins []int, pinTone, toneHz int) (*RealDriver, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	d := &RealDriver{chip: chip, toneHz: toneHz}

	for _, pin := range ledPins {
		line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("request led pin %d: %w", pin, err)
		}
		d.ledPins = append(d.ledPins, line)
	}

	toneLine, err := chip.RequestLine(pinTone, gpiocdev.AsOutput(0))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("request tone pin %d: %w", pinTone, err)
	}
	d.tonePin = toneLine

	return d, nil
}

// ShowPattern sets each LED line from its slot. Slots beyond the number of
// requested lines are ignored.
func (d *RealDriver) ShowPattern(slots []bool) error {
	for i, line := range d.ledPins {
		v := 0
		if i < len(slots) && slots[i] {
			v = 1
		}
		if err := line.SetValue(v); err != nil {
			return fmt.Errorf("set led %d: %w", i, err)
		}
	}
	return nil
}

// SetTone drives the sidetone line.
func (d *RealDriver) SetTone(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := d.tonePin.SetValue(v); err != nil {
		return fmt.Errorf("set tone: %w", err)
	}
	return nil
}

// ToneHz returns the configured passthrough frequency.
func (d *RealDriver) ToneHz() int {
	return d.toneHz
}

// Close turns all lines off and releases GPIO resources.
func (d *RealDriver) Close() error {
	var errs []error

	for i, line := range d.ledPins {
		if line == nil {
			continue
		}
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear led %d: %w", i, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close led %d: %w", i, err))
		}
	}
	if d.tonePin != nil {
		if err := d.tonePin.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear tone: %w", err))
		}
		if err := d.tonePin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close tone: %w", err))
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
