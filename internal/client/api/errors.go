package api

import "errors"

// Sentinel errors forming the client-side error taxonomy. Callers match
// them with errors.Is and render them inline; none of them is fatal.
var (
	// ErrUnavailable: the request failed to complete (network failure,
	// timeout, unreachable host). Not retried automatically.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized: the token was missing or rejected by the backend.
	// The backend is the sole authority; the client only interprets the
	// rejection status.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound: the requested plot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials: login rejected; the session is left unchanged.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail: registration rejected, email already on file.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrValidation: the backend rejected the request body.
	ErrValidation = errors.New("validation failed")

	// ErrBadResponse: the response decoded but violated the expected
	// schema. Surfaced instead of applying a partial result.
	ErrBadResponse = errors.New("malformed server response")
)
