package signal

import (
	"time"

	"morselink-go/types"
	"morselink-go/x/mathx"
	"morselink-go/x/timex"
)

// Timings gathers every duration the node uses. The classifier windows, the
// pulse durations and the symbol gap are wire-visible behaviour: two
// independently built nodes must agree on them.
type Timings struct {
	// Input classification
	ShortMin      time.Duration // holds at or below this are noise
	DashThreshold time.Duration // holds beyond this are a dash
	Debounce      time.Duration // settle window after release
	DashCue       time.Duration // one-shot cue pulse during a long hold

	// Playback
	DotPulse  time.Duration
	DashPulse time.Duration
	SymbolGap time.Duration

	// Module configuration
	Settle    time.Duration
	ProbeWait time.Duration

	// Readiness feedback
	FeedbackBeeps int
	ReadyBeep     time.Duration
	FailBeep      time.Duration

	// Poll loop
	Tick time.Duration
}

// DefaultTimings returns the interoperability constants.
func DefaultTimings() Timings {
	return Timings{
		ShortMin:      100 * time.Millisecond,
		DashThreshold: 1000 * time.Millisecond,
		Debounce:      50 * time.Millisecond,
		DashCue:       100 * time.Millisecond,

		DotPulse:  200 * time.Millisecond,
		DashPulse: 600 * time.Millisecond,
		SymbolGap: 1000 * time.Millisecond,

		Settle:    1000 * time.Millisecond,
		ProbeWait: 100 * time.Millisecond,

		FeedbackBeeps: 5,
		ReadyBeep:     150 * time.Millisecond,
		FailBeep:      500 * time.Millisecond,

		Tick: 5 * time.Millisecond,
	}
}

// TimingsFromConfig applies millisecond overrides from node config.
// Zero fields keep the defaults; overrides are clamped to sane bounds.
func TimingsFromConfig(tc types.TimingConfig) Timings {
	t := DefaultTimings()
	if v := tc.ShortMinMs; v != 0 {
		t.ShortMin = timex.Ms(mathx.Clamp(v, 10, 1000))
	}
	if v := tc.DashThresholdMs; v != 0 {
		t.DashThreshold = timex.Ms(mathx.Clamp(v, 100, 10_000))
	}
	if v := tc.DebounceMs; v != 0 {
		t.Debounce = timex.Ms(mathx.Clamp(v, 5, 500))
	}
	if v := tc.DotPulseMs; v != 0 {
		t.DotPulse = timex.Ms(mathx.Clamp(v, 20, 2000))
	}
	if v := tc.DashPulseMs; v != 0 {
		t.DashPulse = timex.Ms(mathx.Clamp(v, 50, 5000))
	}
	if v := tc.SymbolGapMs; v != 0 {
		t.SymbolGap = timex.Ms(mathx.Clamp(v, 100, 10_000))
	}
	if v := tc.SettleMs; v != 0 {
		t.Settle = timex.Ms(mathx.Clamp(v, 100, 5000))
	}
	if v := tc.ProbeWaitMs; v != 0 {
		t.ProbeWait = timex.Ms(mathx.Clamp(v, 100, 1000))
	}
	if v := tc.TickMs; v != 0 {
		t.Tick = timex.Ms(mathx.Clamp(v, 1, 100))
	}
	return t
}
