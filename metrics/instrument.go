package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-kit/restkit/endpoint"
	httptransport "github.com/go-kit/restkit/transport/http"
)

// Outcome labels reported by InstrumentingMiddleware besides HTTP status codes.
const (
	OutcomeSuccess = "2xx"
	OutcomeFailed  = "failed"
	OutcomeError   = "error"
)

// InstrumentingMiddleware returns an endpoint.Middleware counting calls in
// requests and observing their duration in seconds in latency. Both are
// labelled with "endpoint", set to name, and "code": the HTTP status code of
// a *StatusError, OutcomeError for any other error, OutcomeFailed for
// responses implementing endpoint.Failer with a non-nil Failed, and
// OutcomeSuccess otherwise.
func InstrumentingMiddleware[Request, Response any](name string, requests Counter, latency Histogram) endpoint.Middleware[Request, Response] {
	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (response Response, err error) {
			defer func(begin time.Time) {
				code := Outcome(response, err)
				requests.With("endpoint", name, "code", code).Add(1)
				latency.With("endpoint", name, "code", code).Observe(time.Since(begin).Seconds())
			}(time.Now())
			return next(ctx, request)
		}
	}
}

// Outcome classifies the result of an endpoint call the way
// InstrumentingMiddleware labels it.
func Outcome(response interface{}, err error) string {
	if err != nil {
		var serr *httptransport.StatusError
		if errors.As(err, &serr) {
			return strconv.Itoa(serr.StatusCode)
		}
		return OutcomeError
	}
	if f, ok := response.(endpoint.Failer); ok && f.Failed() != nil {
		return OutcomeFailed
	}
	return OutcomeSuccess
}
