package signal

import (
	"testing"
	"time"

	"morselink-go/types"
)

func TestDefaultTimings(t *testing.T) {
	d := DefaultTimings()
	checks := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"ShortMin", d.ShortMin, 100 * time.Millisecond},
		{"DashThreshold", d.DashThreshold, 1000 * time.Millisecond},
		{"Debounce", d.Debounce, 50 * time.Millisecond},
		{"DashCue", d.DashCue, 100 * time.Millisecond},
		{"DotPulse", d.DotPulse, 200 * time.Millisecond},
		{"DashPulse", d.DashPulse, 600 * time.Millisecond},
		{"SymbolGap", d.SymbolGap, 1000 * time.Millisecond},
		{"Settle", d.Settle, 1000 * time.Millisecond},
		{"ProbeWait", d.ProbeWait, 100 * time.Millisecond},
		{"ReadyBeep", d.ReadyBeep, 150 * time.Millisecond},
		{"FailBeep", d.FailBeep, 500 * time.Millisecond},
		{"Tick", d.Tick, 5 * time.Millisecond},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if d.FeedbackBeeps != 5 {
		t.Errorf("FeedbackBeeps = %d, want 5", d.FeedbackBeeps)
	}
}

func TestTimingsFromConfig_ZeroKeepsDefaults(t *testing.T) {
	if TimingsFromConfig(types.TimingConfig{}) != DefaultTimings() {
		t.Fatal("zero config changed the defaults")
	}
}

func TestTimingsFromConfig_Overrides(t *testing.T) {
	got := TimingsFromConfig(types.TimingConfig{
		ShortMinMs:      60,
		DashThresholdMs: 400,
		TickMs:          2,
	})
	if got.ShortMin != 60*time.Millisecond {
		t.Errorf("ShortMin = %v", got.ShortMin)
	}
	if got.DashThreshold != 400*time.Millisecond {
		t.Errorf("DashThreshold = %v", got.DashThreshold)
	}
	if got.Tick != 2*time.Millisecond {
		t.Errorf("Tick = %v", got.Tick)
	}
	// Untouched fields keep their defaults.
	if got.Debounce != 50*time.Millisecond {
		t.Errorf("Debounce = %v", got.Debounce)
	}
}

func TestTimingsFromConfig_Clamped(t *testing.T) {
	got := TimingsFromConfig(types.TimingConfig{
		ShortMinMs:  1,      // below floor
		ProbeWaitMs: 60_000, // above ceiling
		TickMs:      500,
	})
	if got.ShortMin != 10*time.Millisecond {
		t.Errorf("ShortMin = %v, want floor", got.ShortMin)
	}
	if got.ProbeWait != 1000*time.Millisecond {
		t.Errorf("ProbeWait = %v, want ceiling", got.ProbeWait)
	}
	if got.Tick != 100*time.Millisecond {
		t.Errorf("Tick = %v, want ceiling", got.Tick)
	}
}
