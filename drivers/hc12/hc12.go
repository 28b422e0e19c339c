// Package hc12 drives an HC-12 wireless serial module over a byte port.
//
// The module is half duplex and line oriented: every payload is a
// newline-terminated ASCII line. A dedicated mode-select line switches the
// module between data mode (high) and AT command mode (low); configuration
// commands are only accepted in command mode.
package hc12

import (
	"context"
	"time"

	"morselink-go/errcode"
	"morselink-go/types"
	"morselink-go/x/mathx"
	"morselink-go/x/strx"
)

const (
	// DefaultBaud is the fixed line rate both nodes of a link must use.
	DefaultBaud = 9600

	probe       = "AT" // liveness command
	probeOKPfx  = "OK" // affirmative reply prefix
	maxPending  = 8    // completed inbound lines buffered before drop-oldest
	recvTimeout = 5 * time.Millisecond
)

// Config bounds the startup handshake and line framing.
type Config struct {
	Baud      uint32
	Settle    time.Duration // module init time after a mode change
	ProbeWait time.Duration // how long to wait for the probe reply
	MaxLine   int           // inbound line length bound (bytes)
}

func (c Config) withDefaults() Config {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.Settle == 0 {
		c.Settle = time.Second
	}
	if c.ProbeWait == 0 {
		c.ProbeWait = 100 * time.Millisecond
	}
	c.MaxLine = mathx.Clamp(c.MaxLine, 16, 256)
	return c
}

// Device owns the port and the mode-select pin. It is not safe for
// concurrent use; a single poll loop is the sole caller.
type Device struct {
	port types.LinePort
	set  types.GPIOPin
	cfg  Config

	buf     []byte
	line    []byte
	pending []string

	sleep func(time.Duration)
}

// New wires a device and places the module in data mode.
func New(port types.LinePort, set types.GPIOPin, cfg Config) *Device {
	cfg = cfg.withDefaults()
	_ = set.ConfigureOutput(true)
	return &Device{
		port:  port,
		set:   set,
		cfg:   cfg,
		buf:   make([]byte, cfg.MaxLine),
		line:  make([]byte, 0, cfg.MaxLine),
		sleep: time.Sleep,
	}
}

// EnterCommandMode drives the mode-select line low.
func (d *Device) EnterCommandMode() { d.set.Set(false) }

// ExitCommandMode restores data mode.
func (d *Device) ExitCommandMode() { d.set.Set(true) }

// Setup runs the one-shot startup handshake: command mode, settle, fix the
// line rate, probe liveness, interpret the reply. Data mode is restored on
// every path, including transport silence, so a failed probe can never
// leave the module stuck in command mode. There is no retry.
func (d *Device) Setup(ctx context.Context) (ready bool, reply string) {
	d.EnterCommandMode()
	defer d.ExitCommandMode()

	d.sleep(d.cfg.Settle)
	_ = d.port.SetBaudRate(d.cfg.Baud)

	if err := d.SendLine(probe); err != nil {
		return false, ""
	}
	d.sleep(d.cfg.ProbeWait)

	if !d.Available(ctx) {
		return false, ""
	}
	reply, _ = d.ReadLine()
	return strx.HasPrefix(reply, probeOKPfx), reply
}

// SendLine writes one newline-terminated payload.
func (d *Device) SendLine(s string) error {
	out := make([]byte, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, '\n')
	if _, err := d.port.Write(out); err != nil {
		return &errcode.E{C: errcode.PortWrite, Op: "hc12.SendLine", Err: err}
	}
	return nil
}

// Available drains the port and reports whether a complete inbound line is
// waiting. It never blocks beyond the bounded per-chunk receive.
func (d *Device) Available(ctx context.Context) bool {
	d.pump(ctx)
	return len(d.pending) > 0
}

// ReadLine pops the oldest complete inbound line.
func (d *Device) ReadLine() (string, bool) {
	if len(d.pending) == 0 {
		return "", false
	}
	line := d.pending[0]
	d.pending = d.pending[1:]
	return line, true
}

// pump moves pending port bytes into the line accumulator.
func (d *Device) pump(ctx context.Context) {
	for {
		select {
		case <-d.port.Readable():
			rctx, cancel := context.WithTimeout(ctx, recvTimeout)
			n, _ := d.port.RecvSomeContext(rctx, d.buf)
			cancel()
			if n <= 0 {
				return
			}
			d.accumulate(d.buf[:n])
		default:
			return
		}
	}
}

// accumulate splits on LF, ignores CR, and bounds line length by dropping
// overflow bytes rather than faulting.
func (d *Device) accumulate(p []byte) {
	for _, b := range p {
		switch b {
		case '\n':
			d.complete()
		case '\r':
			// ignore
		default:
			if len(d.line) < d.cfg.MaxLine {
				d.line = append(d.line, b)
			}
		}
	}
}

func (d *Device) complete() {
	if len(d.pending) >= maxPending {
		d.pending = d.pending[1:]
	}
	d.pending = append(d.pending, string(d.line))
	d.line = d.line[:0]
}
