package model

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a required field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned on bad credentials or an unknown session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStoreUnavailable is returned when the persistence layer fails.
	ErrStoreUnavailable = errors.New("store unavailable")
)
