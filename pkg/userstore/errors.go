package userstore

import "errors"

var (
	// ErrInvalidConfig is returned by Open for incomplete configuration.
	ErrInvalidConfig = errors.New("userstore: invalid config")

	// ErrInvalidParams is returned by Register for incomplete or malformed input.
	ErrInvalidParams = errors.New("userstore: invalid registration params")

	// ErrAlreadyRegistered is returned when the phone number is taken.
	ErrAlreadyRegistered = errors.New("userstore: already registered")

	// ErrInvalidCredentials is returned for unknown identifiers and wrong
	// passwords alike; callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("userstore: invalid credentials")

	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("userstore: user not found")
)
