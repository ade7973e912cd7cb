package http

import (
	"context"
	"net/http"
)

// RequestFunc may take information from a context and use it to manipulate
// an outgoing HTTP request. RequestFuncs are executed after creating the
// request but prior to invoking the HTTP client.
type RequestFunc func(context.Context, *http.Request) context.Context

// ClientResponseFunc may take information from an HTTP response and make the
// response available for consumption. ClientResponseFuncs are executed on
// every response received, before the status code is checked.
type ClientResponseFunc func(context.Context, *http.Response) context.Context

// ClientFinalizerFunc can be used to perform work at the end of a client HTTP
// request, after the response is returned. The principal intended use is for
// error logging. Additional response data (if available) is provided in the
// passed context under keys with the ContextKeyResponse prefix.
// Note: err may be nil. There may also be no additional response parameters
// depending on when an error occurs.
type ClientFinalizerFunc func(ctx context.Context, err error)

// SetRequestHeader returns a RequestFunc that sets the given header.
func SetRequestHeader(key, val string) RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		r.Header.Set(key, val)
		return ctx
	}
}

// SetUserAgent returns a RequestFunc that sets the User-Agent header.
func SetUserAgent(userAgent string) RequestFunc {
	return SetRequestHeader("User-Agent", userAgent)
}

type contextKey int

const (
	// ContextKeyRequestMethod is populated in the context of finalizers.
	// Its value is r.Method.
	ContextKeyRequestMethod contextKey = iota

	// ContextKeyRequestURL is populated in the context of finalizers.
	// Its value is the resolved request URL as a string.
	ContextKeyRequestURL

	// ContextKeyResponseHeaders is populated in the context whenever a
	// ClientFinalizerFunc is specified. Its value is of type http.Header, and
	// is captured only once the entire response has been received.
	ContextKeyResponseHeaders

	// ContextKeyResponseSize is populated in the context whenever a
	// ClientFinalizerFunc is specified. Its value is of type int64.
	ContextKeyResponseSize

	// ContextKeyResponseStatus is populated in the context whenever a
	// ClientFinalizerFunc is specified. Its value is of type int.
	ContextKeyResponseStatus
)
