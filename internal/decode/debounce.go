package decode

import "time"

// debouncer emits at most one edge per physical key transition. A candidate
// transition (sample differs from the stable state) is accepted only if the
// settle window has elapsed since the last accepted press AND since the last
// accepted release. Rejected candidates are dropped, not buffered.
type debouncer struct {
	settle      time.Duration
	pressed     bool // current stable state
	lastPress   time.Time
	lastRelease time.Time
}

// sample feeds one raw reading. Returns the accepted edge, or nil.
func (d *debouncer) sample(raw bool, now time.Time) *Edge {
	if raw == d.pressed {
		return nil
	}

	// Zero time means no edge of that kind has been accepted yet.
	if !d.lastPress.IsZero() && now.Sub(d.lastPress) < d.settle {
		return nil
	}
	if !d.lastRelease.IsZero() && now.Sub(d.lastRelease) < d.settle {
		return nil
	}

	d.pressed = raw
	if raw {
		d.lastPress = now
		return &Edge{Kind: EdgePress, Time: now}
	}
	d.lastRelease = now
	return &Edge{Kind: EdgeRelease, Time: now}
}
