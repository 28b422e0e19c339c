package types

import "context"

// ---- GPIO ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is a single digital line. Implementations are synchronous and
// assumed reliable.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// ---- Serial ----

// LinePort is the byte-oriented half-duplex port underneath the line
// framing. Readable is signalled when inbound bytes are pending;
// RecvSomeContext returns whatever is buffered, bounded by ctx.
type LinePort interface {
	Write(p []byte) (int, error)
	RecvSomeContext(ctx context.Context, buf []byte) (int, error)
	Readable() <-chan struct{}
	SetBaudRate(baud uint32) error
}
