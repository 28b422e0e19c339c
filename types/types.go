package types

// ---- Symbols ----

// Symbol is one of the two encodable key gestures plus the null case.
// At most one symbol is in flight per poll cycle; symbols are never queued.
type Symbol uint8

const (
	SymbolNone Symbol = iota
	SymbolShort
	SymbolDash
)

func (s Symbol) String() string {
	switch s {
	case SymbolShort:
		return "short"
	case SymbolDash:
		return "dash"
	default:
		return "none"
	}
}

// ---- Signal service state (retained) ----

type SignalState struct {
	Level  string `json:"level"`  // "configuring", "ready", "degraded", "stopped"
	Status string `json:"status"` // freeform short code
	TS     int64  `json:"ts_ms"`
}

// ---- Signal events (non-retained) ----

// SymbolEvent is published on signal/event/rx and signal/event/tx.
type SymbolEvent struct {
	Symbol string `json:"symbol"` // "short" | "dash"
	TS     int64  `json:"ts_ms"`
}

// DropEvent is published when an inbound line failed to decode.
type DropEvent struct {
	Line string `json:"line"`
	TS   int64  `json:"ts_ms"`
}

// ProbeResult reports the one-shot startup liveness probe outcome.
type ProbeResult struct {
	Ready    bool   `json:"ready"`
	Response string `json:"response,omitempty"` // raw reply line, if any
	TS       int64  `json:"ts_ms"`
}

// ---- Node configuration ----
//
// Resolved once at startup and passed by value into the service
// constructors. There is no runtime reconfiguration of a running node.

// Role selects which side drives the link echo check in boardtest.
type Role string

const (
	RoleInitiator Role = "initiator"
	RoleResponder Role = "responder"
)

type NodeConfig struct {
	Role    Role         `json:"role,omitempty"`
	Pins    PinConfig    `json:"pins"`
	Timings TimingConfig `json:"timings,omitempty"`
}

// PinConfig uses the platform's logical pin numbering.
type PinConfig struct {
	Button int `json:"button"` // momentary input, active-low, pull-up
	LED    int `json:"led"`
	Buzzer int `json:"buzzer"`
	Set    int `json:"set"` // wireless module mode select (low = command mode)
	UARTTx int `json:"uart_tx"`
	UARTRx int `json:"uart_rx"`
}

// TimingConfig overrides selected timing constants, in milliseconds.
// Zero means "use the default"; overrides are clamped on normalisation.
// The wire-visible values must match on both nodes of a link.
type TimingConfig struct {
	ShortMinMs      uint32 `json:"short_min_ms,omitempty"`
	DashThresholdMs uint32 `json:"dash_threshold_ms,omitempty"`
	DebounceMs      uint32 `json:"debounce_ms,omitempty"`
	DotPulseMs      uint32 `json:"dot_pulse_ms,omitempty"`
	DashPulseMs     uint32 `json:"dash_pulse_ms,omitempty"`
	SymbolGapMs     uint32 `json:"symbol_gap_ms,omitempty"`
	SettleMs        uint32 `json:"settle_ms,omitempty"`
	ProbeWaitMs     uint32 `json:"probe_wait_ms,omitempty"`
	TickMs          uint32 `json:"tick_ms,omitempty"`
}
