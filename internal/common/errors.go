// Package common defines shared constants and sentinel errors used across
// the storage, service and transport layers of blogapi. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInvalidQuery  = errors.New("invalid query")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
)
