package shared

import "errors"

// Expected, locally recoverable failures surfaced to the presentation layer.
// None of these are process-fatal.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
)
