//go:build !linux

package indicator

import "errors"

// RealDriver is not available on non-Linux platforms.
type RealDriver struct{}

// NewRealDriver returns an error on non-Linux platforms.
func NewRealDriver(ledPins []int, pinTone, toneHz int) (*RealDriver, error) {
	return nil, errors.New("indicator: not supported on this platform (requires Linux)")
}

// ShowPattern is not implemented on non-Linux platforms.
func (d *RealDriver) ShowPattern(slots []bool) error {
	return errors.New("indicator: not supported")
}

// SetTone is not implemented on non-Linux platforms.
func (d *RealDriver) SetTone(on bool) error {
	return errors.New("indicator: not supported")
}

// ToneHz is not implemented on non-Linux platforms.
func (d *RealDriver) ToneHz() int {
	return 0
}

// Close is not implemented on non-Linux platforms.
func (d *RealDriver) Close() error {
	return nil
}
