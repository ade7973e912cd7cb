package circuitbreaker

import (
	"context"

	"github.com/afex/hystrix-go/hystrix"

	"github.com/go-kit/restkit/endpoint"
)

// Hystrix returns an endpoint.Middleware that implements the circuit
// breaker pattern using the afex/hystrix-go package.
//
// When using this circuit breaker, please configure your commands separately.
//
// See https://godoc.org/github.com/afex/hystrix-go/hystrix for more
// information.
func Hystrix[Request, Response any](commandName string, options ...Option) endpoint.Middleware[Request, Response] {
	cfg := newConfig(options)
	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (Response, error) {
			var (
				response Response
				ignored  error
			)
			if err := hystrix.Do(commandName, func() error {
				var err error
				if response, err = next(ctx, request); err != nil && cfg.ignore(err) {
					ignored = err
					return nil
				}
				return err
			}, nil); err != nil {
				var zero Response
				return zero, err
			}
			return response, ignored
		}
	}
}
