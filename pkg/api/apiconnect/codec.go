// Package apiconnect wires the bashir.v1 services to connect handlers and
// clients.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces connect's protojson codec so plain Go structs can be
// used as messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON selects the JSON codec for a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
