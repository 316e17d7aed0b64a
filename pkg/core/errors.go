package core

import "errors"

// Common errors.
//
// Operations wrap these with additional context, so callers should match
// them with errors.Is rather than comparing directly.
var (
	// ErrConfiguration is returned when the requested options leave no
	// characters to sample from.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument is returned for malformed numeric or enumeration input,
	// such as a non-positive length or an unknown case type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned when the vault cannot be persisted.
	ErrIO = errors.New("vault i/o error")
)
