// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers of eventhub. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound             = errors.New("not found")
	ErrorUnknownBackend       = errors.New("unknown storage backend")
	ErrorStorageNotConfigured = errors.New("storage is not configured")
	ErrorIncompatibleSnapshot = errors.New("incompatible snapshot")

	// Access errors returned by the authorization gate.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Input errors raised by form widgets before calling a service.
	ErrorValidation = errors.New("validation error")
)
