//go:build rp2040 || rp2350

package platform

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/buzzer"

	"morselink-go/drivers/hc12"
	"morselink-go/errcode"
	"morselink-go/types"
)

type rp2Pin struct {
	p machine.Pin
	n int
}

func newPin(n int) (*rp2Pin, error) {
	if n < 0 || n > 28 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "platform.newPin"}
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, nil
}

func (r *rp2Pin) ConfigureInput(p types.Pull) error {
	var mode machine.PinMode
	switch p {
	case types.PullUp:
		mode = machine.PinInputPullup
	case types.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}
func (r *rp2Pin) Set(b bool) { r.p.Set(b) }
func (r *rp2Pin) Get() bool  { return r.p.Get() }
func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}
func (r *rp2Pin) Number() int { return r.n }

// buzzerPin drives a piezo through the drivers buzzer so On also works for
// passive elements. Level reads report the last commanded state.
type buzzerPin struct {
	d     buzzer.Device
	n     int
	level bool
}

func newBuzzerPin(n int) (*buzzerPin, error) {
	if n < 0 || n > 28 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "platform.newBuzzerPin"}
	}
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &buzzerPin{d: buzzer.New(p), n: n}, nil
}

func (b *buzzerPin) ConfigureInput(types.Pull) error {
	return &errcode.E{C: errcode.Unsupported, Op: "platform.buzzerPin"}
}
func (b *buzzerPin) ConfigureOutput(initial bool) error {
	b.Set(initial)
	return nil
}
func (b *buzzerPin) Set(level bool) {
	b.level = level
	if level {
		_ = b.d.On()
	} else {
		_ = b.d.Off()
	}
}
func (b *buzzerPin) Get() bool   { return b.level }
func (b *buzzerPin) Toggle()     { b.Set(!b.level) }
func (b *buzzerPin) Number() int { return b.n }

// rp2Port adapts uartx to types.LinePort.
type rp2Port struct{ u *uartx.UART }

func (p *rp2Port) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2Port) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	return p.u.RecvSomeContext(ctx, buf)
}
func (p *rp2Port) Readable() <-chan struct{}   { return p.u.Readable() }
func (p *rp2Port) SetBaudRate(br uint32) error { p.u.SetBaudRate(br); return nil }

// Default provisions the board per the node's pin map: button, LED, buzzer,
// SET pin, and UART0 to the wireless module.
func Default(cfg types.NodeConfig) (Resources, error) {
	button, err := newPin(cfg.Pins.Button)
	if err != nil {
		return Resources{}, err
	}
	if err := button.ConfigureInput(types.PullUp); err != nil {
		return Resources{}, err
	}
	led, err := newPin(cfg.Pins.LED)
	if err != nil {
		return Resources{}, err
	}
	if err := led.ConfigureOutput(false); err != nil {
		return Resources{}, err
	}
	buz, err := newBuzzerPin(cfg.Pins.Buzzer)
	if err != nil {
		return Resources{}, err
	}
	set, err := newPin(cfg.Pins.Set)
	if err != nil {
		return Resources{}, err
	}

	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: hc12.DefaultBaud,
		TX:       machine.Pin(cfg.Pins.UARTTx),
		RX:       machine.Pin(cfg.Pins.UARTRx),
	})

	return Resources{
		Button: button,
		LED:    led,
		Buzzer: buz,
		Radio:  hc12.New(&rp2Port{u: hw}, set, radioConfig(cfg.Timings)),
	}, nil
}
