package opentracing

import (
	"context"

	"github.com/opentracing/opentracing-go"
)

// EndpointOptions holds the options for tracing an endpoint.
type EndpointOptions struct {
	// IgnoreBusinessError if set to true will not treat a business error
	// identified through the endpoint.Failer interface as a span error.
	IgnoreBusinessError bool

	// GetOperationName is an optional function that can set the span
	// operation name based on the existing one for the endpoint and
	// information in the context.
	//
	// If the function is nil, or the returned name is empty, the existing
	// name for the endpoint is used.
	GetOperationName func(ctx context.Context, name string) string

	// Tags holds the default tags which will be set on span creation.
	Tags opentracing.Tags
}

// EndpointOption allows for functional options to endpoint tracing middleware.
type EndpointOption func(*EndpointOptions)

// WithIgnoreBusinessError if set to true will not treat a business error
// identified through the endpoint.Failer interface as a span error.
func WithIgnoreBusinessError(ignoreBusinessError bool) EndpointOption {
	return func(o *EndpointOptions) {
		o.IgnoreBusinessError = ignoreBusinessError
	}
}

// WithOperationNameFunc sets the function deriving the span operation name.
func WithOperationNameFunc(getOperationName func(ctx context.Context, name string) string) EndpointOption {
	return func(o *EndpointOptions) {
		o.GetOperationName = getOperationName
	}
}

// WithTags adds default tags for the spans created by TraceClient.
func WithTags(tags opentracing.Tags) EndpointOption {
	return func(o *EndpointOptions) {
		if o.Tags == nil {
			o.Tags = make(opentracing.Tags)
		}
		for key, value := range tags {
			o.Tags[key] = value
		}
	}
}
