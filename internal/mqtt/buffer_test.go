package mqtt

import (
	"fmt"
	"testing"
)

func msg(i int) bufferedMsg {
	return bufferedMsg{topic: Topic, payload: []byte(fmt.Sprintf("m%d", i))}
}

func TestRingBufferPushDrain(t *testing.T) {
	r := newRingBuffer(4)

	for i := 0; i < 3; i++ {
		r.push(msg(i))
	}
	if r.len() != 3 {
		t.Fatalf("len: got %d, want 3", r.len())
	}

	out := r.drainAll()
	if len(out) != 3 {
		t.Fatalf("drained: got %d, want 3", len(out))
	}
	for i, m := range out {
		if string(m.payload) != fmt.Sprintf("m%d", i) {
			t.Errorf("message %d: got %q out of order", i, m.payload)
		}
	}
	if r.len() != 0 {
		t.Errorf("len after drain: got %d, want 0", r.len())
	}
}

func TestRingBufferOverflowDropsOldest(t *testing.T) {
	r := newRingBuffer(3)

	for i := 0; i < 5; i++ {
		r.push(msg(i))
	}
	if r.len() != 3 {
		t.Fatalf("len: got %d, want 3", r.len())
	}

	out := r.drainAll()
	want := []string{"m2", "m3", "m4"}
	for i, w := range want {
		if string(out[i].payload) != w {
			t.Errorf("message %d: got %q, want %q", i, out[i].payload, w)
		}
	}
}

func TestRingBufferDrainEmpty(t *testing.T) {
	r := newRingBuffer(2)
	if out := r.drainAll(); out != nil {
		t.Errorf("expected nil drain on empty buffer, got %d messages", len(out))
	}
}

func TestRingBufferReusableAfterDrain(t *testing.T) {
	r := newRingBuffer(2)

	r.push(msg(0))
	r.push(msg(1))
	r.push(msg(2)) // overwrites m0
	r.drainAll()

	r.push(msg(3))
	out := r.drainAll()
	if len(out) != 1 || string(out[0].payload) != "m3" {
		t.Errorf("after drain: got %v", out)
	}
}
