// Package jsonutil provides shared helpers for decoding JSON payloads from
// remote APIs: error wrapping and required-field checks.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingKey is wrapped by RequireStrings when a required key is absent
// or not a string.
var ErrMissingKey = errors.New("missing required key")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a decoded JSON object.
// The second result is false if the key is absent or not a string.
func GetString(m map[string]any, key string) (string, bool) {
	val, ok := m[key].(string)
	return val, ok
}

// RequireStrings checks that data is a JSON object holding every key as a
// string value. Other keys are ignored.
func RequireStrings(data []byte, keys ...string) error {
	var m map[string]any
	if err := UnmarshalWithContext(data, &m, "decoding object"); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("decoding object: %w: payload is null", ErrMissingKey)
	}
	for _, key := range keys {
		if _, ok := GetString(m, key); !ok {
			return fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
	}
	return nil
}
