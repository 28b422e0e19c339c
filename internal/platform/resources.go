// Package platform provisions hardware for the current build target: real
// pins and UART on RP2 boards, fakes and an in-memory line port on the host.
package platform

import (
	"morselink-go/drivers/hc12"
	"morselink-go/types"
	"morselink-go/x/mathx"
	"morselink-go/x/timex"
)

// Resources is everything a signaling node needs from the board.
type Resources struct {
	Button types.GPIOPin // momentary input, active-low, pull-up
	LED    types.GPIOPin
	Buzzer types.GPIOPin
	Radio  *hc12.Device
}

// radioConfig maps the node's timing overrides onto the module driver.
// Zero-valued overrides leave the driver defaults in place.
func radioConfig(tc types.TimingConfig) hc12.Config {
	var cfg hc12.Config
	if tc.SettleMs != 0 {
		cfg.Settle = timex.Ms(mathx.Clamp(tc.SettleMs, 100, 5000))
	}
	if tc.ProbeWaitMs != 0 {
		cfg.ProbeWait = timex.Ms(mathx.Clamp(tc.ProbeWaitMs, 100, 1000))
	}
	return cfg
}
