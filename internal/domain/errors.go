package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the class of an application error. Classification in the
// HTTP layer switches on the kind rather than probing error strings.
type Kind int

const (
	// KindUnknown is the zero value and is never produced deliberately.
	KindUnknown Kind = iota

	// KindMalformedInput means a caller-supplied value had the wrong shape,
	// e.g. a request body that could not be decoded.
	KindMalformedInput

	// KindNotFound means a well-formed identifier matched no row.
	KindNotFound

	// KindInvalidQuery means a query parameter was well-formed but not
	// supported, e.g. an unknown sort column.
	KindInvalidQuery

	// KindBadRequest is a generic caller error carrying its own message.
	KindBadRequest
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed_input"
	case KindNotFound:
		return "not_found"
	case KindInvalidQuery:
		return "invalid_query"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// Common user-facing messages.
const (
	MsgBadRequest       = "Bad request"
	MsgArticleNotFound  = "Article ID not found"
	MsgCommentNotFound  = "Comment ID not found"
	MsgTopicNotFound    = "Topic not found"
	MsgUsernameNotFound = "Username not found"
	MsgInvalidEndpoint  = "Invalid Endpoint"
	MsgInternalError    = "Internal server error"
	MsgResourceNotFound = "Resource not found"
	MsgTooManyRequests  = "Too many requests"
)

// Error is the tagged application error. Msg is safe to show to API clients;
// Err, when present, is the underlying cause and is only ever logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindMalformedInput, KindInvalidQuery, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NotFound returns a KindNotFound error with the given client message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// InvalidQuery returns a KindInvalidQuery error with the given client message.
func InvalidQuery(msg string) *Error {
	return &Error{Kind: KindInvalidQuery, Msg: msg}
}

// BadRequest returns a KindBadRequest error with the given client message.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

// MalformedInput wraps cause as a KindMalformedInput error. The client only
// ever sees MsgBadRequest.
func MalformedInput(cause error) *Error {
	return &Error{Kind: KindMalformedInput, Msg: MsgBadRequest, Err: cause}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err carries a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}
