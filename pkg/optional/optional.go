// Package optional provides a presence-aware wrapper for partial update payloads.
// A Value records whether its JSON key was present, which a plain pointer cannot
// do for values that may legitimately be null or empty.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a value of T together with whether it was supplied.
type Value[T any] struct {
	Set   bool
	Value T
}

// Of returns a Value marked as present.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Value: v}
}

// Get returns the value and whether it was supplied.
func (v Value[T]) Get() (T, bool) {
	return v.Value, v.Set
}

// UnmarshalJSON marks the value as present. encoding/json only calls it when the
// key exists, including when the key carries null.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.Value = zero
		return nil
	}
	return json.Unmarshal(data, &v.Value)
}

// MarshalJSON encodes the wrapped value. Absent values encode as null; use
// IsZero with the omitzero tag option to drop them.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Set {
		return []byte("null"), nil
	}
	return json.Marshal(v.Value)
}

// IsZero reports whether the value is absent.
func (v Value[T]) IsZero() bool {
	return !v.Set
}
