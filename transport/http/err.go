package http

import (
	"errors"
	"fmt"
	"net/http"
)

// These are some pre-generated constants that can be used to check against
// for the TransportError domains.
const (
	// DomainNewRequest represents an error at the Request Generation
	// Scope.
	DomainNewRequest = "NewRequest"

	// DomainEncode represent an error that has occurred while encoding the
	// body of the request.
	DomainEncode = "Encode"
)

// TransportError represents an error that occurred while preparing a request,
// before anything was sent.
type TransportError struct {
	// Domain represents the phase in which the error was generated.
	Domain string

	// Err references the underlying error that caused this error
	// overall.
	Err error
}

// Error implements the error interface.
func (e TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Domain, e.Err)
}

// Unwrap returns the underlying error.
func (e TransportError) Unwrap() error {
	return e.Err
}

// StatusError is returned by Client.Request when the server answers with a
// status code outside of the 2xx range. Up to MaxErrorBodySize bytes of the
// response body have already been read into Body, and the body closed.
type StatusError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte

	// BodyErr is the error that cut reading the body short, if any. Body
	// then holds only what was read before it.
	BodyErr error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("http: unexpected status %s", status)
	}
	return fmt.Sprintf("http: unexpected status %s: %s", status, e.Body)
}

// IsClientError reports whether err is, or wraps, a StatusError with a 4xx
// status code.
func IsClientError(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.StatusCode >= 400 && serr.StatusCode < 500
}

// IsServerError reports whether err is, or wraps, a StatusError with a 5xx
// status code.
func IsServerError(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.StatusCode >= 500
}

// FormatError is returned when a path template cannot be filled with the
// converted positional arguments of a call.
type FormatError struct {
	// Template is the path template being formatted.
	Template string

	// Offset is the byte offset of the offending slot in Template.
	Offset int

	// Reason describes what went wrong.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("format %q at offset %d: %s", e.Template, e.Offset, e.Reason)
}

// ArgumentError is returned when the arguments of an endpoint call don't fit
// the endpoint declaration, or when a converter rejects a value.
type ArgumentError struct {
	// Name is the parameter name for named arguments, or empty for
	// positional ones.
	Name string

	// Index is the position of a positional argument, or -1 for named ones.
	Index int

	Err error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("argument %q: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("argument %d: %s", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

var (
	// ErrTooManyArgs is wrapped by an ArgumentError when a call passes more
	// positional arguments than the endpoint declares converters for.
	ErrTooManyArgs = errors.New("unexpected positional argument")

	// ErrUnknownParam is wrapped by an ArgumentError when a call passes a
	// named argument the endpoint doesn't declare.
	ErrUnknownParam = errors.New("unknown named argument")
)
