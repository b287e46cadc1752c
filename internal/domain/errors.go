package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// UserError is a domain-level failure the storefront API embeds inside an
// otherwise successful response body.
type UserError struct {
	Code    string   `json:"code"`
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// ValidationError reports malformed or missing input, detected before any
// upstream call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DomainError carries the customerUserErrors list returned by the storefront
// for one operation. The full list is kept; callers surface the first entry.
type DomainError struct {
	Op     string
	Errors []UserError
}

func (e *DomainError) Error() string {
	if len(e.Errors) == 0 {
		return e.Op + ": user error"
	}
	return e.Errors[0].Message
}

// Code returns the first user error's code, or empty if none.
func (e *DomainError) Code() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Code
}

// TransportError wraps a network or decode failure talking to the storefront.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConsistencyError indicates the upstream accepted a call but returned no
// usable object and no explicit user error.
type ConsistencyError struct {
	Op      string
	Message string
}

func (e *ConsistencyError) Error() string {
	return e.Message
}
