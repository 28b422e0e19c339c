package signal

import (
	"time"

	"morselink-go/types"
)

type pressPhase uint8

const (
	phaseIdle pressPhase = iota
	phaseHeld
	phaseSettle
)

// Classifier converts button holds into symbols. The press is tracked as a
// state machine across poll ticks instead of a blocking wait, so inbound
// traffic keeps being serviced while the operator holds the key down.
type Classifier struct {
	button types.GPIOPin
	invert bool // active-low buttons read low while pressed

	t   Timings
	cue func() // one-shot dash confirmation; may be nil

	phase      pressPhase
	pressedAt  time.Time
	releasedAt time.Time
	cued       bool

	now func() time.Time
}

func NewClassifier(button types.GPIOPin, invert bool, t Timings, cue func()) *Classifier {
	return &Classifier{
		button: button,
		invert: invert,
		t:      t,
		cue:    cue,
		now:    time.Now,
	}
}

// Poll samples the button once and advances the press state machine. It
// returns a non-NONE symbol at most once per completed press, one debounce
// interval after release. Holds at or below ShortMin are bounce, not
// symbols.
func (c *Classifier) Poll() types.Symbol {
	pressed := c.button.Get()
	if c.invert {
		pressed = !pressed
	}
	now := c.now()

	switch c.phase {
	case phaseIdle:
		if pressed {
			c.phase = phaseHeld
			c.pressedAt = now
			c.cued = false
		}

	case phaseHeld:
		if !pressed {
			c.phase = phaseSettle
			c.releasedAt = now
			break
		}
		if !c.cued && now.Sub(c.pressedAt) > c.t.DashThreshold {
			c.cued = true
			if c.cue != nil {
				c.cue()
			}
		}

	case phaseSettle:
		if now.Sub(c.releasedAt) < c.t.Debounce {
			break
		}
		c.phase = phaseIdle
		d := c.releasedAt.Sub(c.pressedAt)
		switch {
		case d > c.t.DashThreshold:
			return types.SymbolDash
		case d > c.t.ShortMin:
			return types.SymbolShort
		}
	}
	return types.SymbolNone
}

// Holding reports whether a press is currently being tracked.
func (c *Classifier) Holding() bool { return c.phase == phaseHeld }
