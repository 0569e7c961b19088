// Package common defines shared constants and sentinel errors used across
// the training hub's storage and service layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// ErrSchema means the local database could not be opened or upgraded.
	// It is fatal: the application must not start without its schema.
	ErrSchema = errors.New("schema error")

	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConflict means a transaction lost to a concurrent writer and was
	// rolled back. The whole operation may be retried.
	ErrConflict = errors.New("transaction conflict")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrorInternal         = errors.New("internal error")
)
