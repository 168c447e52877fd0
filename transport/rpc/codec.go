package rpc

import (
	"encoding/json"
	"fmt"
)

// Codec names replacing connect's protobuf JSON codecs
const (
	codecNameJSON        = "json"
	codecNameJSONCharset = "json; charset=utf-8"
)

// jsonCodec marshals plain Go structs with encoding/json
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	// Connect sends no body for empty messages
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal into %T: %w", message, err)
	}
	return nil
}
