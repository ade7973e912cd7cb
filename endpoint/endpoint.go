package endpoint

import (
	"context"
)

// Endpoint is the fundamental building block of API clients. It represents a
// single remote operation, taking a typed request and yielding a typed
// response.
type Endpoint[Request, Response any] func(ctx context.Context, request Request) (response Response, err error)

// Nop is an endpoint that does nothing and returns a nil error.
// Useful for tests.
func Nop[Request, Response any](context.Context, Request) (Response, error) {
	var response Response
	return response, nil
}

// Middleware is a chainable behavior modifier for endpoints.
type Middleware[Request, Response any] func(Endpoint[Request, Response]) Endpoint[Request, Response]

// Chain is a helper function for composing middlewares. Requests will
// traverse them in the order they're declared. That is, the first middleware
// is treated as the outermost middleware.
func Chain[Request, Response any](outer Middleware[Request, Response], others ...Middleware[Request, Response]) Middleware[Request, Response] {
	return func(next Endpoint[Request, Response]) Endpoint[Request, Response] {
		for i := len(others) - 1; i >= 0; i-- { // reverse
			next = others[i](next)
		}
		return outer(next)
	}
}

// Failer may be implemented by response types that hold error properties as
// to separate business errors from transport errors. Middlewares such as the
// instrumenting one in package metrics check for it and report upon it.
type Failer interface {
	Failed() error
}

type contextKey int

const (
	// ContextKeyEndpointName is populated in the context by
	// EndpointNameMiddleware. Its value is a string.
	ContextKeyEndpointName contextKey = iota
)

// EndpointNameMiddleware injects the endpoint name into the context so that
// inner middlewares and request funcs can label their output with it.
func EndpointNameMiddleware[Request, Response any](name string) Middleware[Request, Response] {
	return func(next Endpoint[Request, Response]) Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (Response, error) {
			ctx = context.WithValue(ctx, ContextKeyEndpointName, name)
			return next(ctx, request)
		}
	}
}

// NameFromContext returns the endpoint name set by EndpointNameMiddleware,
// or the empty string.
func NameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(ContextKeyEndpointName).(string)
	return name
}
