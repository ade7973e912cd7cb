package opencensus

import (
	"context"
	"errors"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"

	"github.com/go-kit/restkit/endpoint"
	httptransport "github.com/go-kit/restkit/transport/http"
)

// TraceEndpointDefaultName is the default endpoint span name to use.
const TraceEndpointDefaultName = "restkit/endpoint"

// TraceEndpoint returns an Endpoint middleware, tracing an endpoint call.
// Propagation of the SpanContext over the wire is left to the HTTP client;
// see HTTPClientTrace.
//
// A *StatusError sets the span status from the HTTP status code. Any other
// error sets StatusCodeUnknown.
func TraceEndpoint[Request, Response any](name string, options ...EndpointOption) endpoint.Middleware[Request, Response] {
	if name == "" {
		name = TraceEndpointDefaultName
	}

	cfg := &EndpointOptions{}
	for _, o := range options {
		o(cfg)
	}

	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (response Response, err error) {
			spanName := name
			if cfg.GetName != nil {
				if newName := cfg.GetName(ctx, name); newName != "" {
					spanName = newName
				}
			}

			ctx, span := trace.StartSpan(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
			if len(cfg.Attributes) > 0 {
				span.AddAttributes(cfg.Attributes...)
			}
			defer span.End()

			if cfg.GetAttributes != nil {
				if attrs := cfg.GetAttributes(ctx); len(attrs) > 0 {
					span.AddAttributes(attrs...)
				}
			}

			defer func() {
				if err != nil {
					var serr *httptransport.StatusError
					if errors.As(err, &serr) {
						span.AddAttributes(trace.Int64Attribute(ochttp.StatusCodeAttribute, int64(serr.StatusCode)))
						span.SetStatus(ochttp.TraceStatus(serr.StatusCode, serr.Status))
						return
					}
					span.SetStatus(trace.Status{
						Code:    trace.StatusCodeUnknown,
						Message: err.Error(),
					})
					return
				}

				// test for business error
				if res, ok := interface{}(response).(endpoint.Failer); ok && res.Failed() != nil {
					span.AddAttributes(
						trace.StringAttribute("restkit.business.error", res.Failed().Error()),
					)
					if cfg.IgnoreBusinessError {
						span.SetStatus(trace.Status{Code: trace.StatusCodeOK})
						return
					}
					span.SetStatus(trace.Status{
						Code:    trace.StatusCodeUnknown,
						Message: res.Failed().Error(),
					})
					return
				}

				span.SetStatus(trace.Status{Code: trace.StatusCodeOK})
			}()
			return next(ctx, request)
		}
	}
}
