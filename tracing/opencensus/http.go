package opencensus

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/plugin/ochttp/propagation/b3"
	"go.opencensus.io/trace"
	"go.opencensus.io/trace/propagation"

	httptransport "github.com/go-kit/restkit/transport/http"
)

// TracerOptions holds configuration for HTTPClientTrace.
type TracerOptions struct {
	Sampler        trace.Sampler
	Propagation    propagation.HTTPFormat
	Base           http.RoundTripper
	FormatSpanName func(*http.Request) string
}

// TracerOption allows for functional options to HTTPClientTrace.
type TracerOption func(o *TracerOptions)

// WithSampler sets the sampler for spans started by the HTTP client. The
// default samples every request.
func WithSampler(sampler trace.Sampler) TracerOption {
	return func(o *TracerOptions) {
		o.Sampler = sampler
	}
}

// WithHTTPPropagation sets the wire format used to propagate the span
// context. The default is B3.
func WithHTTPPropagation(p propagation.HTTPFormat) TracerOption {
	return func(o *TracerOptions) {
		o.Propagation = p
	}
}

// WithTransport sets the RoundTripper doing the actual requests. The default
// is http.DefaultTransport.
func WithTransport(rt http.RoundTripper) TracerOption {
	return func(o *TracerOptions) {
		o.Base = rt
	}
}

// WithName sets a fixed span name for outgoing requests. The default is the
// request path.
func WithName(name string) TracerOption {
	return func(o *TracerOptions) {
		if name == "" {
			return
		}
		o.FormatSpanName = func(*http.Request) string { return name }
	}
}

// HTTPClientTrace returns a ClientOption installing an *http.Client whose
// transport starts a client span per request and propagates it to the
// server.
func HTTPClientTrace(options ...TracerOption) httptransport.ClientOption {
	cfg := TracerOptions{
		Sampler:     trace.AlwaysSample(),
		Propagation: &b3.HTTPFormat{},
	}
	for _, option := range options {
		option(&cfg)
	}

	return httptransport.SetClient(&http.Client{
		Transport: &ochttp.Transport{
			Base:        cfg.Base,
			Propagation: cfg.Propagation,
			StartOptions: trace.StartOptions{
				Sampler:  cfg.Sampler,
				SpanKind: trace.SpanKindClient,
			},
			FormatSpanName: cfg.FormatSpanName,
		},
	})
}
