// Package signal runs the Morse signaling node: it classifies button holds
// into symbols, exchanges them over the wireless link and renders inbound
// symbols on the LED and buzzer. State and traffic events go out on the bus.
package signal

import (
	"context"
	"time"

	"morselink-go/bus"
	"morselink-go/internal/platform"
	"morselink-go/types"
	"morselink-go/x/timex"
)

var (
	topicState      = bus.T("signal", "state")
	topicEventProbe = bus.T("signal", "event", "probe")
	topicEventRx    = bus.T("signal", "event", "rx")
	topicEventTx    = bus.T("signal", "event", "tx")
	topicEventDrop  = bus.T("signal", "event", "drop")
)

const (
	StateConfiguring = "configuring"
	StateReady       = "ready"
	StateDegraded    = "degraded"
	StateStopped     = "stopped"
)

type Service struct {
	cfg types.NodeConfig
}

func NewService(cfg types.NodeConfig) *Service { return &Service{cfg: cfg} }

// Start provisions hardware for the current build target and runs the
// service loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	res, err := platform.Default(s.cfg)
	if err != nil {
		return err
	}
	go s.RunWith(ctx, conn, res)
	return nil
}

// RunWith runs the service loop on the given resources. It blocks until ctx
// is cancelled. Tests drive it directly with fakes.
func (s *Service) RunWith(ctx context.Context, conn *bus.Connection, res platform.Resources) {
	t := TimingsFromConfig(s.cfg.Timings)
	playback := NewPlayback(res.LED, res.Buzzer, t)
	classifier := NewClassifier(res.Button, true, t, playback.Cue)

	publishState(conn, StateConfiguring, "")

	ready, reply := res.Radio.Setup(ctx)
	conn.Publish(conn.NewMessage(topicEventProbe, types.ProbeResult{
		Ready:    ready,
		Response: reply,
		TS:       timex.NowMs(),
	}, false))

	// Audible verdict, then run either way. A dead module just means the
	// node signals into the void until it comes back.
	if ready {
		playback.Pattern(t.FeedbackBeeps, t.ReadyBeep)
		publishState(conn, StateReady, reply)
	} else {
		playback.Pattern(t.FeedbackBeeps, t.FailBeep)
		publishState(conn, StateDegraded, reply)
	}

	arb := NewArbiter(res.Radio, classifier, playback, func(e Event) {
		emit(conn, e)
	})

	tick := time.NewTicker(t.Tick)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			publishState(conn, StateStopped, "")
			return
		case <-tick.C:
			arb.Tick(ctx)
		}
	}
}

func publishState(conn *bus.Connection, level, status string) {
	conn.Publish(conn.NewMessage(topicState, types.SignalState{
		Level:  level,
		Status: status,
		TS:     timex.NowMs(),
	}, true))
}

func emit(conn *bus.Connection, e Event) {
	now := timex.NowMs()
	switch e.Kind {
	case EventReceived:
		conn.Publish(conn.NewMessage(topicEventRx, types.SymbolEvent{Symbol: e.Symbol.String(), TS: now}, false))
	case EventSent:
		conn.Publish(conn.NewMessage(topicEventTx, types.SymbolEvent{Symbol: e.Symbol.String(), TS: now}, false))
	case EventDropped:
		conn.Publish(conn.NewMessage(topicEventDrop, types.DropEvent{Line: e.Line, TS: now}, false))
	case EventSendFailed:
		conn.Publish(conn.NewMessage(topicEventDrop, types.DropEvent{Line: e.Line, TS: now}, false))
	}
}
