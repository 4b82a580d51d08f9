package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials - login rejected with 401
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated - missing, expired or rejected session token
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidationError - the backend rejected the request as malformed
// (4xx); Detail carries the backend's message when it sent one.
type ValidationError struct {
	Status int
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.Status, e.Detail)
}

// UnexpectedError - a response outside the known taxonomy (5xx or
// undecodable payloads). Never retried automatically; the user retries
// the triggering action.
type UnexpectedError struct {
	Status int
	Detail string
}

func (e *UnexpectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unexpected backend response (status %d)", e.Status)
	}
	return fmt.Sprintf("unexpected backend response (status %d): %s", e.Status, e.Detail)
}
