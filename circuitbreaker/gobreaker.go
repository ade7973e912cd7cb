package circuitbreaker

import (
	"context"

	"github.com/sony/gobreaker"

	"github.com/go-kit/restkit/endpoint"
)

// Gobreaker returns an endpoint.Middleware that implements the circuit
// breaker pattern using the sony/gobreaker package. Only errors returned by
// the wrapped endpoint count against the circuit breaker's error count.
//
// See http://godoc.org/github.com/sony/gobreaker for more information.
func Gobreaker[Request, Response any](cb *gobreaker.CircuitBreaker, options ...Option) endpoint.Middleware[Request, Response] {
	cfg := newConfig(options)
	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (Response, error) {
			var (
				response Response
				ignored  error
			)
			if _, err := cb.Execute(func() (interface{}, error) {
				var err error
				if response, err = next(ctx, request); err != nil && cfg.ignore(err) {
					ignored = err
					return nil, nil
				}
				return nil, err
			}); err != nil {
				var zero Response
				return zero, err
			}
			return response, ignored
		}
	}
}
