// Package jsonutil provides shared utilities for JSON parsing patterns:
// error wrapping, enum round-tripping, and safe value extraction.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetInt safely extracts an integer value from a map[string]interface{}.
// JSON numbers decode as float64; fractional values are truncated.
// Returns 0 if the key doesn't exist or isn't a number.
func GetInt(m map[string]interface{}, key string) int {
	if val, ok := m[key].(float64); ok {
		return int(val)
	}
	return 0
}

// StringEnum is a constraint for enum types that have a String() method.
type StringEnum interface {
	String() string
}

// MarshalEnum marshals an enum value to JSON as its string representation.
func MarshalEnum[T StringEnum](v T) ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalEnum unmarshals an enum value from JSON via parseFunc, which
// converts the string representation back to the enum value.
func UnmarshalEnum[T StringEnum](data []byte, parseFunc func(string) (T, error)) (T, error) {
	var zero T
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, err
	}
	return parseFunc(s)
}

// BadEnumValue returns the error used by enum parse functions for
// unrecognized string values.
func BadEnumValue(kind, value string) error {
	return fmt.Errorf("unknown %s %q", kind, value)
}
