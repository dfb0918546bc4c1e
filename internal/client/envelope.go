package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Unwrap extracts the payload of an upstream response body.
// Upstream responses normally use the {statusCode, message, data} envelope.
//
// Accepted shapes:
//   - an object with a "data" key: the value of "data" (nil if it is null)
//   - any other object, array, number or string: the body itself
//   - an empty body: nil
//
// A body that is not valid JSON is an error.
func Unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON response")
	}

	if trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if data, ok := fields["data"]; ok {
			if isNull(data) {
				return nil, nil
			}
			return data, nil
		}
	}

	if isNull(trimmed) {
		return nil, nil
	}
	return trimmed, nil
}

// DecodeEnvelope unwraps body and decodes the payload into out.
// A missing payload leaves out untouched.
func DecodeEnvelope(body []byte, out any) error {
	if out == nil {
		return nil
	}

	payload, err := Unwrap(body)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
