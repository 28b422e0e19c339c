// cmd/pico-node/main.go
//
// Firmware entry for one signaling node. Set device to "node-a" or "node-b"
// before flashing; both profiles use the same pin map, the role only matters
// for boardtest.
package main

import (
	"context"
	"time"

	"morselink-go/bus"
	"morselink-go/services/config"
	"morselink-go/services/heartbeat"
	"morselink-go/services/signal"
	"morselink-go/types"
)

const device = "node-a"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("pico-node: boot, device:", device)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, device)

	b := bus.NewBus(8)

	mon := b.NewConnection("monitor")
	sub := mon.Subscribe(bus.T("signal", "#"))
	go func() {
		for m := range sub.Channel() {
			switch p := m.Payload.(type) {
			case types.SignalState:
				println("[signal]", m.Topic.String(), p.Level, p.Status)
			case types.SymbolEvent:
				println("[signal]", m.Topic.String(), p.Symbol)
			case types.DropEvent:
				println("[signal]", m.Topic.String(), "line:", p.Line)
			case types.ProbeResult:
				println("[signal]", m.Topic.String(), "ready:", p.Ready, "reply:", p.Response)
			}
		}
	}()

	config.NewConfigService().Start(ctx, b.NewConnection("config"))
	_ = (&heartbeat.Service{}).Start(ctx, b.NewConnection("heartbeat"))

	cfg, err := config.Node(device)
	if err != nil {
		println("pico-node: config:", err.Error())
		return
	}
	if err := signal.NewService(cfg).Start(ctx, b.NewConnection("signal")); err != nil {
		println("pico-node: signal:", err.Error())
		return
	}

	select {}
}
