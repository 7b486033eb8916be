// Package apperr defines the error kinds the service surfaces. Callers
// classify with errors.Is; every error is terminal for its request.
package apperr

import "errors"

var (
	// ErrUnauthenticated means no viewer could be resolved from the session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the viewer is authenticated but not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means a referenced post or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid means a required field is empty or a reference is bogus.
	ErrInvalid = errors.New("invalid input")
	// ErrConflict means a uniqueness constraint rejected a write.
	ErrConflict = errors.New("conflict")
)
