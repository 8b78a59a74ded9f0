package nutriagent

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors by how they are reported to the caller.
type ErrorKind string

const (
	// KindInvalidEnvelope indicates a malformed request envelope.
	// Examples: wrong jsonrpc version, missing id, params of the wrong shape.
	KindInvalidEnvelope ErrorKind = "invalid_envelope"

	// KindNotFound indicates the addressed resource (an agent) does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindUpstream indicates the external nutrition dataset returned no
	// candidates or could not be reached.
	KindUpstream ErrorKind = "upstream"

	// KindInternal covers everything else: provider failures, malformed agent
	// results, programming errors.
	KindInternal ErrorKind = "internal"
)

// KindedError is an error that knows its own kind.
type KindedError interface {
	error
	Kind() ErrorKind
}

// Error is a kinded error with an optional cause.
type Error struct {
	Msg   string
	K     ErrorKind
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Kind returns the error kind.
func (e *Error) Kind() ErrorKind {
	return e.K
}

// NewInternalError creates an unclassified failure.
func NewInternalError(msg string, cause error) *Error {
	return &Error{Msg: msg, K: KindInternal, Cause: cause}
}

// NewUpstreamError creates an error for a failed or empty upstream lookup.
func NewUpstreamError(msg string, cause error) *Error {
	return &Error{Msg: msg, K: KindUpstream, Cause: cause}
}

// KindOf returns the kind of the first KindedError in err's chain.
// Errors without a kind are internal.
func KindOf(err error) ErrorKind {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return KindInternal
}

// IsInvalidEnvelope reports whether err is a malformed-envelope failure.
func IsInvalidEnvelope(err error) bool {
	return err != nil && KindOf(err) == KindInvalidEnvelope
}

// IsNotFound reports whether err is a resource-not-found failure.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsUpstream reports whether err is an upstream lookup failure.
func IsUpstream(err error) bool {
	return err != nil && KindOf(err) == KindUpstream
}

// APIError reports a failed call to a model provider.
// Provider failures are internal errors from the caller's point of view.
type APIError struct {
	Provider   Provider
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: API error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying SDK error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Kind returns KindInternal.
func (e *APIError) Kind() ErrorKind {
	return KindInternal
}
