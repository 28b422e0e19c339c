// Package heartbeat publishes a periodic liveness beat so observers can tell
// a wedged node from an idle one. The interval follows config/heartbeat.
package heartbeat

import (
	"context"
	"time"

	"morselink-go/bus"
	"morselink-go/x/timex"
)

var (
	topicConfigHeartbeat = bus.T("config", "heartbeat")
	topicBeat            = bus.T("heartbeat", "beat")
)

// Beat is the published payload.
type Beat struct {
	Seq uint32 `json:"seq"`
	TS  int64  `json:"ts_ms"`
}

type Service struct{}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigHeartbeat)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	var seq uint32
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			seq++
			conn.Publish(conn.NewMessage(topicBeat, Beat{Seq: seq, TS: timex.NowMs()}, true))
		case msg := <-cfgSub.Channel():
			if m, ok := msg.Payload.(map[string]any); ok {
				if iv, ok := m["interval"].(float64); ok && iv > 0 {
					tick.Reset(time.Duration(iv * float64(time.Second)))
				}
			}
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
