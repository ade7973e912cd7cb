package opentracing

import (
	"context"
	"net/http"

	"github.com/go-kit/log"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	httptransport "github.com/go-kit/restkit/transport/http"
)

// ContextToHTTP returns an http RequestFunc that injects an OpenTracing Span
// found in ctx into the http headers. If no such Span can be found, the
// RequestFunc is a noop.
func ContextToHTTP(tracer opentracing.Tracer, logger log.Logger) httptransport.RequestFunc {
	return func(ctx context.Context, req *http.Request) context.Context {
		if span := opentracing.SpanFromContext(ctx); span != nil {
			ext.HTTPMethod.Set(span, req.Method)
			ext.HTTPUrl.Set(span, req.URL.String())
			ext.PeerHostname.Set(span, req.URL.Host)

			carrier := opentracing.HTTPHeadersCarrier(req.Header)
			if err := tracer.Inject(span.Context(), opentracing.HTTPHeaders, carrier); err != nil {
				logger.Log("err", err)
			}
		}
		return ctx
	}
}
