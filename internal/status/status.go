// Package status provides a thread-safe status tracker for the tapwriter
// daemon. It is designed to be read by HTTP handlers and by the MQTT system
// event formatter.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/tapwriter/internal/decode"
)

// transcriptMax bounds the decoded-text tail kept for display.
const transcriptMax = 256

// NetworkInfo contains network state. This is a local copy to avoid
// importing internal/config from status.
type NetworkInfo struct {
	Type       string
	IP         string
	Status     string
	Gateway    string
	WifiStatus string
	SSID       string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	DebounceMs  int64
	DashMs      int64
	CharGapMs   int64
	WordGapMs   int64
	HeartbeatMs int64
	ToneHz      int
	Broker      string
	HTTPAddr    string
	WSBroker    string // Websocket broker URL for browser MQTT (empty = disabled)
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	KeyDown       bool
	Pattern       string // in-progress dot/dash run
	Transcript    string // bounded tail of decoded output
	Counts        decode.EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Network       *NetworkInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the key state, in-progress pattern and event counts.
// Called from runLoop on every tick.
func (t *Tracker) Update(keyDown bool, pattern string, counts decode.EventCounts) {
	t.mu.Lock()
	t.snap.KeyDown = keyDown
	t.snap.Pattern = pattern
	t.snap.Counts = counts
	t.mu.Unlock()
}

// AppendText appends decoded output to the transcript tail, trimming to
// the display bound.
func (t *Tracker) AppendText(s string) {
	t.mu.Lock()
	tr := t.snap.Transcript + s
	if r := []rune(tr); len(r) > transcriptMax {
		tr = string(r[len(r)-transcriptMax:])
	}
	t.snap.Transcript = tr
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// SetNetwork sets the network info.
func (t *Tracker) SetNetwork(info *NetworkInfo) {
	t.mu.Lock()
	t.snap.Network = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
