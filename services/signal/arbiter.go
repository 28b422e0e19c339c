package signal

import (
	"context"

	"morselink-go/types"
)

// Link is what the arbiter needs from the transport: one inbound line at a
// time, one outbound line at a time.
type Link interface {
	Available(ctx context.Context) bool
	ReadLine() (string, bool)
	SendLine(s string) error
}

// EventKind tags a tick outcome.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventReceived
	EventSent
	EventDropped
	EventSendFailed
)

// Event reports one tick outcome to the service layer. The arbiter never
// touches the bus directly.
type Event struct {
	Kind   EventKind
	Symbol types.Symbol
	Line   string
	Err    error
}

// Arbiter is the per-tick decision procedure over the half-duplex link.
type Arbiter struct {
	link       Link
	classifier *Classifier
	playback   *Playback
	emit       func(Event) // may be nil
}

func NewArbiter(link Link, classifier *Classifier, playback *Playback, emit func(Event)) *Arbiter {
	return &Arbiter{link: link, classifier: classifier, playback: playback, emit: emit}
}

// Tick runs one poll cycle. Reception always wins: while an inbound line is
// pending the local key is not consulted, so a node never talks over a
// message it has not yet drained. When the inbound queue is empty the
// classifier is polled and at most one symbol is transmitted.
func (a *Arbiter) Tick(ctx context.Context) {
	if a.link.Available(ctx) {
		line, ok := a.link.ReadLine()
		if !ok {
			return
		}
		sym := Decode(line)
		if sym == types.SymbolNone {
			a.event(Event{Kind: EventDropped, Line: line})
			return
		}
		a.event(Event{Kind: EventReceived, Symbol: sym, Line: line})
		a.playback.Render(sym)
		return
	}

	sym := a.classifier.Poll()
	if sym == types.SymbolNone {
		return
	}
	line, ok := Encode(sym)
	if !ok {
		return
	}
	if err := a.link.SendLine(line); err != nil {
		a.event(Event{Kind: EventSendFailed, Symbol: sym, Err: err})
		return
	}
	a.event(Event{Kind: EventSent, Symbol: sym, Line: line})
}

func (a *Arbiter) event(e Event) {
	if a.emit != nil {
		a.emit(e)
	}
}
