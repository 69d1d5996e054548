package indicator

// FakeDriver records indicator output for test assertions.
type FakeDriver struct {
	// Patterns contains every slot vector passed to ShowPattern.
	Patterns [][]bool

	// ToneChanges contains every value passed to SetTone.
	ToneChanges []bool

	// Tone is the most recent tone state.
	Tone bool

	// ShowError, if set, will be returned by ShowPattern.
	ShowError error

	// ToneError, if set, will be returned by SetTone.
	ToneError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDriver creates a FakeDriver for testing.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{}
}

// ShowPattern records a copy of the slot vector.
func (f *FakeDriver) ShowPattern(slots []bool) error {
	if f.ShowError != nil {
		return f.ShowError
	}
	cp := make([]bool, len(slots))
	copy(cp, slots)
	f.Patterns = append(f.Patterns, cp)
	return nil
}

// SetTone records the tone state.
func (f *FakeDriver) SetTone(on bool) error {
	if f.ToneError != nil {
		return f.ToneError
	}
	f.ToneChanges = append(f.ToneChanges, on)
	f.Tone = on
	return nil
}

// Close marks the driver as closed.
func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded output.
func (f *FakeDriver) Reset() {
	f.Patterns = nil
	f.ToneChanges = nil
	f.Tone = false
	f.Closed = false
	f.ShowError = nil
	f.ToneError = nil
}
