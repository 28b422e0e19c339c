//go:build !rp2040 && !rp2350

package platform

import (
	"context"
	"sync"

	"morselink-go/drivers/hc12"
	"morselink-go/types"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements types.GPIOPin for host-side builds and tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
}

func (p *FakePin) ConfigureInput(pull types.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	if pull == types.PullUp {
		p.level = true // idle high, like a real pulled-up input
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// Pins hands out stable *FakePin instances per number.
type Pins struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func NewPins() *Pins { return &Pins{pins: make(map[int]*FakePin)} }

func (f *Pins) Pin(n int) *FakePin {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p
}

// ----------------------------- Line port (host) -------------------------------

// LoopPort is an in-memory types.LinePort. Writes land in the linked peer's
// receive buffer.
type LoopPort struct {
	mu       sync.Mutex
	peer     *LoopPort
	rx       []byte
	readable chan struct{}
	baud     uint32
	closed   bool
}

func NewLoopPort() *LoopPort {
	return &LoopPort{readable: make(chan struct{}, 1)}
}

// LinkPorts cross-connects two ports into one half-duplex link.
func LinkPorts(a, b *LoopPort) {
	a.peer = b
	b.peer = a
}

func (p *LoopPort) Write(data []byte) (int, error) {
	dst := p.peer
	if dst == nil {
		dst = p // self-linked loopback
	}
	dst.mu.Lock()
	dst.rx = append(dst.rx, data...)
	dst.mu.Unlock()
	dst.signal()
	return len(data), nil
}

func (p *LoopPort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	for {
		p.mu.Lock()
		if len(p.rx) > 0 {
			n := copy(buf, p.rx)
			p.rx = p.rx[n:]
			p.mu.Unlock()
			p.signal()
			return n, nil
		}
		p.mu.Unlock()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-p.readable:
		}
	}
}

func (p *LoopPort) Readable() <-chan struct{} { return p.readable }

func (p *LoopPort) SetBaudRate(baud uint32) error {
	p.mu.Lock()
	p.baud = baud
	p.mu.Unlock()
	return nil
}

func (p *LoopPort) signal() {
	p.mu.Lock()
	pend := len(p.rx) > 0
	p.mu.Unlock()
	if !pend {
		return
	}
	select {
	case p.readable <- struct{}{}:
	default:
	}
}

// ----------------------------- Module emulator --------------------------------

// StartModuleEmu emulates the wireless module's far side on one port end:
// it answers the liveness probe affirmatively and echoes every data line
// back, so a single host node hears its own transmissions.
func StartModuleEmu(ctx context.Context, end *LoopPort) {
	go func() {
		buf := make([]byte, 64)
		var line []byte
		for {
			n, err := end.RecvSomeContext(ctx, buf)
			if err != nil {
				return
			}
			for _, b := range buf[:n] {
				switch b {
				case '\n':
					handleEmuLine(end, string(line))
					line = line[:0]
				case '\r':
				default:
					line = append(line, b)
				}
			}
		}
	}()
}

func handleEmuLine(end *LoopPort, line string) {
	if line == "AT" {
		_, _ = end.Write([]byte("OK+V4.0\n"))
		return
	}
	_, _ = end.Write([]byte(line + "\n"))
}

// ----------------------------- Provisioning ----------------------------------

// HostNode exposes the fakes behind a host node so tests and simulations can
// drive the button and observe the actuators.
type HostNode struct {
	Pins *Pins
	Port *LoopPort // node side
	Far  *LoopPort // module/peer side
}

// NewHostNode builds host resources for one node. The far end of the link is
// returned unconnected to an emulator; callers either attach StartModuleEmu
// or drive it directly as the remote peer.
func NewHostNode(cfg types.NodeConfig) (Resources, *HostNode) {
	pins := NewPins()

	button := pins.Pin(cfg.Pins.Button)
	_ = button.ConfigureInput(types.PullUp)
	led := pins.Pin(cfg.Pins.LED)
	_ = led.ConfigureOutput(false)
	buzzer := pins.Pin(cfg.Pins.Buzzer)
	_ = buzzer.ConfigureOutput(false)

	near := NewLoopPort()
	far := NewLoopPort()
	LinkPorts(near, far)

	res := Resources{
		Button: button,
		LED:    led,
		Buzzer: buzzer,
		Radio: hc12.New(near, pins.Pin(cfg.Pins.Set), radioConfig(cfg.Timings)),
	}
	return res, &HostNode{Pins: pins, Port: near, Far: far}
}

// Default provisions a self-contained host node: the far end of the link is
// an emulated module that acks the probe and echoes data lines.
func Default(cfg types.NodeConfig) (Resources, error) {
	res, hw := NewHostNode(cfg)
	StartModuleEmu(context.Background(), hw.Far)
	return res, nil
}
