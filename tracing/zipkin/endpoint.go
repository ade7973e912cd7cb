package zipkin

import (
	"context"
	"errors"
	"strconv"

	"github.com/openzipkin/zipkin-go"
	"github.com/openzipkin/zipkin-go/model"

	"github.com/go-kit/restkit/endpoint"
	httptransport "github.com/go-kit/restkit/transport/http"
)

// TraceClient returns a Middleware that wraps the next Endpoint in a Zipkin
// client Span called operationName.
func TraceClient[Request, Response any](tracer *zipkin.Tracer, operationName string) endpoint.Middleware[Request, Response] {
	return func(next endpoint.Endpoint[Request, Response]) endpoint.Endpoint[Request, Response] {
		return func(ctx context.Context, request Request) (response Response, err error) {
			var spanOpts = []zipkin.SpanOption{zipkin.Kind(model.Client)}
			// try to retrieve Span from Go context, use its SpanContext if found.
			if parentSpan := zipkin.SpanFromContext(ctx); parentSpan != nil {
				spanOpts = append(spanOpts, zipkin.Parent(parentSpan.Context()))
			}
			sp := tracer.StartSpan(operationName, spanOpts...)
			defer sp.Finish()

			defer func() {
				if err != nil {
					var serr *httptransport.StatusError
					if errors.As(err, &serr) {
						zipkin.TagHTTPStatusCode.Set(sp, strconv.Itoa(serr.StatusCode))
					}
					zipkin.TagError.Set(sp, err.Error())
					return
				}
				if res, ok := interface{}(response).(endpoint.Failer); ok && res.Failed() != nil {
					zipkin.TagError.Set(sp, res.Failed().Error())
				}
			}()

			ctx = zipkin.NewContext(ctx, sp)
			return next(ctx, request)
		}
	}
}
