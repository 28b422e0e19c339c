package signal

import (
	"time"

	"morselink-go/types"
)

// Playback renders symbols and feedback patterns on the audio and visual
// actuators. Rendering is synchronous; whichever component is running owns
// the actuators for the duration.
type Playback struct {
	led    types.GPIOPin
	buzzer types.GPIOPin
	t      Timings
	sleep  func(time.Duration)
}

func NewPlayback(led, buzzer types.GPIOPin, t Timings) *Playback {
	return &Playback{led: led, buzzer: buzzer, t: t, sleep: time.Sleep}
}

// Render plays one received symbol followed by the inter-symbol gap.
func (p *Playback) Render(s types.Symbol) {
	var d time.Duration
	switch s {
	case types.SymbolShort:
		d = p.t.DotPulse
	case types.SymbolDash:
		d = p.t.DashPulse
	default:
		return
	}
	p.led.Set(true)
	p.buzzer.Set(true)
	p.sleep(d)
	p.led.Set(false)
	p.buzzer.Set(false)
	p.sleep(p.t.SymbolGap)
}

// Cue emits the short buzzer-only pulse confirming to the operator that a
// dash is being registered.
func (p *Playback) Cue() {
	p.buzzer.Set(true)
	p.sleep(p.t.DashCue)
	p.buzzer.Set(false)
}

// Pattern beeps the buzzer n times with equal on/off spacing.
func (p *Playback) Pattern(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		p.buzzer.Set(true)
		p.sleep(d)
		p.buzzer.Set(false)
		p.sleep(d)
	}
}
