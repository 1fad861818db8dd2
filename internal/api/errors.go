package api

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrMissingCredential is returned before any network call when an
	// authenticated operation is attempted with no stored token.
	ErrMissingCredential = errors.New("no credential stored")

	// ErrInvalidCredentials is returned when the backend rejects a login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports bad local input. It never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthError reports a missing or rejected credential.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "auth: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError reports a transport failure (DNS, refused connection, timeout).
// It is disjoint from ServerError: the request never produced an HTTP status.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network: %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response, carrying the server-supplied
// message when one was present in the error body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server: %d", e.Status)
}
