//go:build !rp2040 && !rp2350

// Host simulation: two signaling nodes joined by an in-memory link. Node A's
// button is scripted through a short and a dash press; both ends' bus
// traffic is printed. Flash cmd/pico-node for real hardware.
package main

import (
	"context"
	"fmt"
	"time"

	"morselink-go/bus"
	"morselink-go/internal/platform"
	"morselink-go/services/signal"
	"morselink-go/types"
)

// simTimings compresses the hold windows so the demo runs in seconds.
var simTimings = types.TimingConfig{
	ShortMinMs:      50,
	DashThresholdMs: 200,
	DebounceMs:      10,
	DotPulseMs:      40,
	DashPulseMs:     120,
	SymbolGapMs:     60,
	SettleMs:        20,
	ProbeWaitMs:     100,
	TickMs:          2,
}

// bridge pumps one node's far port end: the module liveness probe is
// answered locally, everything else crosses the air to the peer.
func bridge(ctx context.Context, own, peer *platform.LoopPort) {
	go func() {
		buf := make([]byte, 64)
		var line []byte
		for {
			n, err := own.RecvSomeContext(ctx, buf)
			if err != nil {
				return
			}
			for _, c := range buf[:n] {
				switch c {
				case '\n':
					if string(line) == "AT" {
						_, _ = own.Write([]byte("OK+V4.0\n"))
					} else {
						_, _ = peer.Write(append(append([]byte{}, line...), '\n'))
					}
					line = line[:0]
				case '\r':
				default:
					line = append(line, c)
				}
			}
		}
	}()
}

func monitor(b *bus.Bus, name string) {
	conn := b.NewConnection("monitor")
	sub := conn.Subscribe(bus.T("signal", "#"))
	go func() {
		for m := range sub.Channel() {
			fmt.Printf("[%s] %s %+v\n", name, m.Topic, m.Payload)
		}
	}()
}

// press holds an active-low button for d.
func press(pin *platform.FakePin, d time.Duration) {
	pin.Set(false)
	time.Sleep(d)
	pin.Set(true)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := types.NodeConfig{
		Pins:    types.PinConfig{Button: 2, LED: 4, Buzzer: 6, Set: 8, UARTTx: 10, UARTRx: 12},
		Timings: simTimings,
	}

	resA, nodeA := platform.NewHostNode(cfg)
	resB, nodeB := platform.NewHostNode(cfg)
	bridge(ctx, nodeA.Far, nodeB.Far)
	bridge(ctx, nodeB.Far, nodeA.Far)

	busA := bus.NewBus(16)
	busB := bus.NewBus(16)
	monitor(busA, "node-a")
	monitor(busB, "node-b")

	go signal.NewService(cfg).RunWith(ctx, busA.NewConnection("signal"), resA)
	go signal.NewService(cfg).RunWith(ctx, busB.NewConnection("signal"), resB)

	// Let both nodes probe their modules and play the ready pattern.
	time.Sleep(2500 * time.Millisecond)

	buttonA := nodeA.Pins.Pin(cfg.Pins.Button)
	fmt.Println("--- node A: short press ---")
	press(buttonA, 120*time.Millisecond)
	time.Sleep(500 * time.Millisecond)

	fmt.Println("--- node A: dash press ---")
	press(buttonA, 350*time.Millisecond)
	time.Sleep(800 * time.Millisecond)

	fmt.Println("--- done ---")
	cancel()
	time.Sleep(100 * time.Millisecond)
}
