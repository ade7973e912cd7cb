package opentracing

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"

	"github.com/go-kit/restkit/endpoint"
	httptransport "github.com/go-kit/restkit/transport/http"
)

// TraceClient returns a Middleware that wraps the next Endpoint in an
// OpenTracing client Span called operationName. The span is a child of any
// span already in ctx, and is placed in the context handed to next so that
// ContextToHTTP can propagate it.
//
// Errors mark the span as failed. A *StatusError additionally records the
// response status code.
func TraceClient[Request, Response any](tracer opentracing.Tracer, operationName string, opts ...EndpointOption) endpoint.Middleware[Request, Response] {
	cfg := &EndpointOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (response Response, err error) {
			name := operationName
			if cfg.GetOperationName != nil {
				if newName := cfg.GetOperationName(ctx, name); newName != "" {
					name = newName
				}
			}

			var spanOpts []opentracing.StartSpanOption
			if parent := opentracing.SpanFromContext(ctx); parent != nil {
				spanOpts = append(spanOpts, opentracing.ChildOf(parent.Context()))
			}
			span := tracer.StartSpan(name, spanOpts...)
			defer span.Finish()

			ext.SpanKindRPCClient.Set(span)
			for key, value := range cfg.Tags {
				span.SetTag(key, value)
			}

			defer func() {
				if err != nil {
					var serr *httptransport.StatusError
					if errors.As(err, &serr) {
						ext.HTTPStatusCode.Set(span, uint16(serr.StatusCode))
					}
					ext.Error.Set(span, true)
					span.LogFields(otlog.Error(err))
					return
				}
				if res, ok := interface{}(response).(endpoint.Failer); ok && res.Failed() != nil {
					span.LogFields(
						otlog.String("event", "error"),
						otlog.String("message", res.Failed().Error()),
					)
					if !cfg.IgnoreBusinessError {
						ext.Error.Set(span, true)
					}
				}
			}()

			ctx = opentracing.ContextWithSpan(ctx, span)
			return next(ctx, request)
		}
	}
}
