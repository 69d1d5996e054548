package decode

import (
	"strings"
	"time"

	"github.com/sweeney/tapwriter/internal/morse"
)

// deadline is an optionally scheduled instant. The zero value is
// unscheduled; "unscheduled" is an explicit state, never a sentinel
// timestamp.
type deadline struct {
	at  time.Time
	set bool
}

func (d *deadline) schedule(at time.Time) {
	d.at = at
	d.set = true
}

func (d *deadline) cancel() {
	d.at = time.Time{}
	d.set = false
}

func (d *deadline) elapsed(now time.Time) bool {
	return d.set && now.After(d.at)
}

// Engine turns raw key samples into decoded output events. It owns all
// decoder state (current run, both deadlines, debounce state, press
// timestamp); callers must serialize Tick calls.
type Engine struct {
	cfg Config
	deb debouncer

	pressedAt    time.Time // valid while the stable state is pressed
	run          []Symbol
	charDeadline deadline
	wordDeadline deadline

	counts        EventCounts
	startTime     time.Time
	lastHeartbeat time.Time
}

// NewEngine creates an engine with the given timing config. The startTime
// is used for calculating uptime in heartbeat events.
func NewEngine(cfg Config, startTime time.Time) *Engine {
	return &Engine{
		cfg:           cfg,
		deb:           debouncer{settle: cfg.Debounce},
		run:           make([]Symbol, 0, MaxSymbols),
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Tick processes one input sample and returns any events that should be
// emitted, in order.
func (e *Engine) Tick(in Input) []Event {
	if edge := e.deb.sample(in.Pressed, in.Time); edge != nil {
		switch edge.Kind {
		case EdgePress:
			// Still typing: suppress any pending flush.
			e.charDeadline.cancel()
			e.wordDeadline.cancel()
			e.pressedAt = edge.Time
			e.counts.Presses++
		case EdgeRelease:
			sym := classify(edge.Time.Sub(e.pressedAt), e.cfg.DashThreshold)
			if len(e.run) < MaxSymbols {
				e.run = append(e.run, sym)
			}
			// Reschedule, not accumulate: every release overwrites both.
			e.charDeadline.schedule(edge.Time.Add(e.cfg.CharGap))
			e.wordDeadline.schedule(edge.Time.Add(e.cfg.WordGap))
		}
	}

	var events []Event

	// Character before word: CharGap < WordGap guarantees the character a
	// word boundary terminates has already been flushed.
	if e.charDeadline.elapsed(in.Time) {
		events = append(events, e.flush(in.Time))
		e.charDeadline.cancel()
	}
	if e.wordDeadline.elapsed(in.Time) {
		events = append(events, Event{
			Timestamp: in.Time,
			Type:      EventWordBoundary,
			Text:      " ",
		})
		e.counts.Words++
		e.wordDeadline.cancel()
	}

	return events
}

// flush resolves the current run against the symbol table, builds the
// indicator vector, and clears the run.
func (e *Engine) flush(now time.Time) Event {
	ev := Event{
		Timestamp: now,
		Pattern:   renderRun(e.run),
	}

	for i := 0; i < len(e.run) && i < MaxSymbols; i++ {
		ev.Indicators[i] = e.run[i] == Dash
	}

	if ch, ok := morse.Lookup(ev.Pattern); ok {
		ev.Type = EventCharacter
		ev.Text = string(ch)
		e.counts.Characters++
	} else {
		ev.Type = EventUnknown
		ev.Text = UnknownMarker
		e.counts.Unknown++
	}

	e.run = e.run[:0]
	return ev
}

// renderRun renders a symbol run as a dot/dash string.
func renderRun(run []Symbol) string {
	var b strings.Builder
	for _, s := range run {
		b.WriteString(string(s))
	}
	return b.String()
}

// Pressed returns the current stable key state.
func (e *Engine) Pressed() bool {
	return e.deb.pressed
}

// CurrentPattern returns the in-progress dot/dash run.
func (e *Engine) CurrentPattern() string {
	return renderRun(e.run)
}

// CountsSnapshot returns a copy of the event counts.
func (e *Engine) CountsSnapshot() EventCounts {
	return e.counts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil if the interval has not
// elapsed or if interval is <= 0 (disabled).
func (e *Engine) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}

	if now.Sub(e.lastHeartbeat) < interval {
		return nil
	}

	e.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(e.startTime),
		Counts:    e.counts,
	}
}
