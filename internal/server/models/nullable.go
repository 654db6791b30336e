package models

import (
	"bytes"
	"encoding/json"
)

// Nullable is an update field for a nullable column. It tells apart a field
// that was left out (Set is false), an explicit null (Set with a nil Value)
// and a new value.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf returns a Nullable that sets the column to v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// NullOf returns a Nullable that sets the column to NULL.
func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON marks the field as set; a JSON null clears Value.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}
