package circuitbreaker

import (
	httptransport "github.com/go-kit/restkit/transport/http"
)

// Option sets an optional parameter for circuit breaker middlewares.
type Option func(*config)

type config struct {
	ignore func(error) bool
}

func newConfig(options []Option) config {
	cfg := config{ignore: func(error) bool { return false }}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// IgnoreErrors makes the breaker count errors for which ignore returns true
// as successes. The errors are still returned to the caller.
func IgnoreErrors(ignore func(error) bool) Option {
	return func(cfg *config) { cfg.ignore = ignore }
}

// IgnoreClientErrors is IgnoreErrors for 4xx responses.
func IgnoreClientErrors() Option {
	return IgnoreErrors(httptransport.IsClientError)
}
