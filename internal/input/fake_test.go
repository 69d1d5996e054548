package input

import (
	"errors"
	"testing"
)

func TestFakeReaderReturnsScriptedSamples(t *testing.T) {
	f := NewFakeReader([]bool{false, true, true, false})

	want := []bool{false, true, true, false}
	for i, w := range want {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("read %d: got %v, want %v", i, got, w)
		}
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([]bool{false, true})

	f.Read()
	f.Read()

	for i := 0; i < 3; i++ {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("read: unexpected error: %v", err)
		}
		if !got {
			t.Errorf("extra read %d: expected last sample to repeat", i)
		}
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)
	if _, err := f.Read(); err == nil {
		t.Error("expected error with no samples configured")
	}
}

func TestFakeReaderReadError(t *testing.T) {
	f := NewFakeReader([]bool{true})
	f.ReadError = errors.New("boom")
	if _, err := f.Read(); err == nil {
		t.Error("expected configured read error")
	}
}

func TestFakeReaderReset(t *testing.T) {
	f := NewFakeReader([]bool{true, false})
	f.Read()
	f.Read()
	f.Close()

	f.Reset()
	if f.Closed {
		t.Error("Reset should clear Closed")
	}
	got, err := f.Read()
	if err != nil {
		t.Fatalf("read after reset: %v", err)
	}
	if !got {
		t.Error("read after reset should return the first sample")
	}
}
