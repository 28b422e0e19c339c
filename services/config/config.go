// Package config publishes the embedded per-device configuration onto the
// bus as retained messages, one topic per top-level key, and decodes the
// node profile for direct consumers.
package config

import (
	"context"
	"encoding/json"

	"morselink-go/bus"
	"morselink-go/errcode"
	"morselink-go/types"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// Node decodes the "node" section of a device's embedded config.
func Node(device string) (types.NodeConfig, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.NodeConfig{}, &errcode.E{C: errcode.UnknownDevice, Op: "config.Node", Msg: device}
	}
	var doc struct {
		Node types.NodeConfig `json:"node"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.NodeConfig{}, &errcode.E{C: errcode.InvalidPayload, Op: "config.Node", Err: err}
	}
	return doc.Node, nil
}

// publishConfig reads the device config from embedded data and publishes it
// as retained messages.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.publishConfig", Msg: "missing device ID in context"}
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return &errcode.E{C: errcode.UnknownDevice, Op: "config.publishConfig", Msg: device}
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return &errcode.E{C: errcode.InvalidPayload, Op: "config.publishConfig", Err: err}
	}

	for k, v := range m {
		conn.Publish(conn.NewMessage(bus.T(configPrefix, k), v, true))
	}
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		_ = s.publishConfig(ctx, conn)
	}()
}
