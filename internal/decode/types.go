// Package decode contains the pure decode engine: debounce, press
// classification, deadline-based segmentation and symbol table lookup.
// This package has NO hardware or network dependencies (no GPIO, MQTT, OS,
// or time.Sleep). Time is always injectable via time.Time parameters.
package decode

import "time"

// Symbol is the atomic decoded unit.
type Symbol string

const (
	Dot  Symbol = "."
	Dash Symbol = "-"
)

// MaxSymbols bounds the number of symbols per character. Releases beyond
// the bound still reschedule the segmentation deadlines but the extra
// symbols are dropped.
const MaxSymbols = 6

// UnknownMarker is emitted on the text stream for runs with no table entry.
const UnknownMarker = "#"

// EdgeKind distinguishes accepted key transitions.
type EdgeKind string

const (
	EdgePress   EdgeKind = "PRESS"
	EdgeRelease EdgeKind = "RELEASE"
)

// Edge is an accepted, debounced key transition.
type Edge struct {
	Kind EdgeKind
	Time time.Time
}

// EventType classifies decoded output events.
type EventType string

const (
	EventCharacter    EventType = "CHARACTER"
	EventUnknown      EventType = "UNKNOWN"
	EventWordBoundary EventType = "WORD_BOUNDARY"
)

// Event is a decoded output event to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType

	// Text is the decoded character, the unknown marker, or a single
	// space for a word boundary.
	Text string

	// Pattern is the dot/dash run that produced a CHARACTER or UNKNOWN
	// event. Empty for word boundaries.
	Pattern string

	// Indicators holds one slot per possible symbol: ON where the slot
	// held a Dash, OFF for a Dot or past the run's length.
	Indicators [MaxSymbols]bool
}

// Input is a single sample of the logical key state.
type Input struct {
	Pressed bool
	Time    time.Time
}

// Config holds the decode timing constants.
type Config struct {
	// Debounce is the settle window: a candidate transition is accepted
	// only after this much time has passed since the last accepted press
	// and the last accepted release.
	Debounce time.Duration

	// DashThreshold splits press durations: held >= threshold is a Dash,
	// anything shorter is a Dot.
	DashThreshold time.Duration

	// CharGap is the release silence after which the current run is
	// flushed as one character.
	CharGap time.Duration

	// WordGap is the release silence after which a word boundary is
	// emitted. Must exceed CharGap so the character flush always comes
	// first.
	WordGap time.Duration
}

// DefaultConfig returns the build-time timing constants.
func DefaultConfig() Config {
	return Config{
		Debounce:      50 * time.Millisecond,
		DashThreshold: 200 * time.Millisecond,
		CharGap:       350 * time.Millisecond,
		WordGap:       1000 * time.Millisecond,
	}
}

// EventCounts tracks decoded output since startup.
type EventCounts struct {
	Characters int
	Unknown    int
	Words      int
	Presses    int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counts    EventCounts
}
