package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgNodeA = `{
  "node": {
    "role": "initiator",
    "pins": {
      "button": 2,
      "led": 4,
      "buzzer": 6,
      "set": 8,
      "uart_tx": 10,
      "uart_rx": 12
    }
  },
  "heartbeat": {
    "interval": 2
  }
}`

const cfgNodeB = `{
  "node": {
    "role": "responder",
    "pins": {
      "button": 2,
      "led": 4,
      "buzzer": 6,
      "set": 8,
      "uart_tx": 10,
      "uart_rx": 12
    }
  },
  "heartbeat": {
    "interval": 2
  }
}`

var embeddedConfigs = map[string][]byte{
	"node-a": []byte(cfgNodeA),
	"node-b": []byte(cfgNodeB),
}
