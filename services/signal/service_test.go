package signal

import (
	"context"
	"testing"
	"time"

	"morselink-go/bus"
	"morselink-go/internal/platform"
	"morselink-go/types"
)

// fastTimings keeps the end-to-end loops short while staying well clear of
// scheduler jitter.
var fastTimings = types.TimingConfig{
	ShortMinMs:      10,
	DashThresholdMs: 100,
	DebounceMs:      5,
	DotPulseMs:      20,
	DashPulseMs:     50,
	SymbolGapMs:     100,
	SettleMs:        100,
	ProbeWaitMs:     100,
	TickMs:          1,
}

func testNodeConfig() types.NodeConfig {
	return types.NodeConfig{
		Pins:    types.PinConfig{Button: 2, LED: 4, Buzzer: 6, Set: 8, UARTTx: 10, UARTRx: 12},
		Timings: fastTimings,
	}
}

type runningNode struct {
	hw     *platform.HostNode
	button *platform.FakePin
	state  *bus.Subscription
	events *bus.Subscription
}

// startNode runs the service against host fakes and returns handles plus
// subscriptions opened before startup, so nothing is missed.
func startNode(t *testing.T, ctx context.Context, emulateModule bool) *runningNode {
	t.Helper()
	cfg := testNodeConfig()
	res, hw := platform.NewHostNode(cfg)
	if emulateModule {
		platform.StartModuleEmu(ctx, hw.Far)
	}

	b := bus.NewBus(32)
	obs := b.NewConnection("observer")
	n := &runningNode{
		hw:     hw,
		button: hw.Pins.Pin(cfg.Pins.Button),
		state:  obs.Subscribe(topicState),
		events: obs.Subscribe(bus.T("signal", "event", "#")),
	}

	go NewService(cfg).RunWith(ctx, b.NewConnection("signal"), res)
	return n
}

func waitState(t *testing.T, sub *bus.Subscription, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case m := <-sub.Channel():
			st, ok := m.Payload.(types.SignalState)
			if !ok {
				t.Fatalf("state payload type %T", m.Payload)
			}
			if st.Level == want {
				return
			}
		case <-deadline:
			t.Fatalf("state %q not reached", want)
		}
	}
}

func nextEvent(t *testing.T, sub *bus.Subscription, timeout time.Duration) *bus.Message {
	t.Helper()
	select {
	case m := <-sub.Channel():
		return m
	case <-time.After(timeout):
		t.Fatal("no event")
		return nil
	}
}

func press(pin *platform.FakePin, hold time.Duration) {
	pin.Set(false)
	time.Sleep(hold)
	pin.Set(true)
}

func TestService_StartupReadyAndSymbolRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := startNode(t, ctx, true)

	waitState(t, n.state, StateConfiguring, time.Second)

	m := nextEvent(t, n.events, 2*time.Second)
	probe, ok := m.Payload.(types.ProbeResult)
	if !ok {
		t.Fatalf("first event payload type %T", m.Payload)
	}
	if !probe.Ready {
		t.Fatalf("probe not ready: %+v", probe)
	}

	waitState(t, n.state, StateReady, 5*time.Second)

	// A short hold goes out on the wire; the emulated module echoes it
	// straight back, so the same symbol comes in again.
	press(n.button, 40*time.Millisecond)

	m = nextEvent(t, n.events, 2*time.Second)
	tx, ok := m.Payload.(types.SymbolEvent)
	if !ok || m.Topic.String() != "signal/event/tx" {
		t.Fatalf("event = %s %#v", m.Topic, m.Payload)
	}
	if tx.Symbol != "short" {
		t.Fatalf("tx symbol = %q", tx.Symbol)
	}

	m = nextEvent(t, n.events, 2*time.Second)
	rx, ok := m.Payload.(types.SymbolEvent)
	if !ok || m.Topic.String() != "signal/event/rx" {
		t.Fatalf("event = %s %#v", m.Topic, m.Payload)
	}
	if rx.Symbol != "short" {
		t.Fatalf("rx symbol = %q", rx.Symbol)
	}
}

func TestService_DashRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := startNode(t, ctx, true)
	waitState(t, n.state, StateReady, 5*time.Second)
	drainProbe(t, n.events)

	press(n.button, 150*time.Millisecond)

	m := nextEvent(t, n.events, 2*time.Second)
	tx, _ := m.Payload.(types.SymbolEvent)
	if tx.Symbol != "dash" {
		t.Fatalf("tx = %s %#v", m.Topic, m.Payload)
	}
	m = nextEvent(t, n.events, 2*time.Second)
	rx, _ := m.Payload.(types.SymbolEvent)
	if rx.Symbol != "dash" {
		t.Fatalf("rx = %s %#v", m.Topic, m.Payload)
	}
}

func TestService_SilentModuleDegraded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := startNode(t, ctx, false) // nobody on the far end

	m := nextEvent(t, n.events, 2*time.Second)
	probe, ok := m.Payload.(types.ProbeResult)
	if !ok {
		t.Fatalf("first event payload type %T", m.Payload)
	}
	if probe.Ready {
		t.Fatalf("probe ready with a silent module: %+v", probe)
	}

	// Degraded, but still alive: a press still goes out on the wire.
	waitState(t, n.state, StateDegraded, 10*time.Second)
	press(n.button, 40*time.Millisecond)

	m = nextEvent(t, n.events, 2*time.Second)
	tx, ok := m.Payload.(types.SymbolEvent)
	if !ok || m.Topic.String() != "signal/event/tx" {
		t.Fatalf("event = %s %#v", m.Topic, m.Payload)
	}
	if tx.Symbol != "short" {
		t.Fatalf("tx symbol = %q", tx.Symbol)
	}
}

func TestService_JunkLineDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := startNode(t, ctx, true)
	waitState(t, n.state, StateReady, 5*time.Second)
	drainProbe(t, n.events)

	// Inject noise as if it arrived over the air.
	_, _ = n.hw.Far.Write([]byte("hello\n"))

	m := nextEvent(t, n.events, 2*time.Second)
	drop, ok := m.Payload.(types.DropEvent)
	if !ok || m.Topic.String() != "signal/event/drop" {
		t.Fatalf("event = %s %#v", m.Topic, m.Payload)
	}
	if drop.Line != "hello" {
		t.Fatalf("dropped line = %q", drop.Line)
	}
}

func TestService_StopPublishesStoppedState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := startNode(t, ctx, true)
	waitState(t, n.state, StateReady, 5*time.Second)

	cancel()
	waitState(t, n.state, StateStopped, 2*time.Second)
}

func drainProbe(t *testing.T, sub *bus.Subscription) {
	t.Helper()
	m := nextEvent(t, sub, 2*time.Second)
	if _, ok := m.Payload.(types.ProbeResult); !ok {
		t.Fatalf("expected probe event first, got %s %#v", m.Topic, m.Payload)
	}
}
