// Package apperr defines the error kinds surfaced by the scale API and their HTTP mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the caller.
type Kind int

const (
	// KindInternal is any unexpected or unclassified failure.
	KindInternal Kind = iota
	// KindInvalidInput marks missing or malformed request data.
	KindInvalidInput
	// KindNotFound marks a reference to an unknown entity.
	KindNotFound
	// KindUpstream marks a failing collaborator (classifier, store).
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream_failure"
	default:
		return "internal_error"
	}
}

const internalMessage = "internal server error"

// Error carries a kind, a caller-safe message and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	// Status overrides the status code derived from Kind when non-zero.
	Status int
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput reports a rejected request.
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// TooLarge reports a payload exceeding the configured limit.
func TooLarge(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message, Status: http.StatusRequestEntityTooLarge}
}

// UnsupportedMedia reports a payload of the wrong content type.
func UnsupportedMedia(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message, Status: http.StatusUnsupportedMediaType}
}

// NotFound reports an unknown entity.
func NotFound(message string, err error) error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

// Upstream reports a failing collaborator. The message must not leak internals.
func Upstream(message string, err error) error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Internal wraps an unexpected failure.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: internalMessage, Err: err}
}

// KindOf returns the kind of err, KindInternal when it is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	if appErr.Status != 0 {
		return appErr.Status
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show to API callers.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal || appErr.Message == "" {
		return internalMessage
	}
	return appErr.Message
}
