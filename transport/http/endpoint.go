package http

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/go-kit/restkit/endpoint"
)

// MethodUpdate is the non-standard UPDATE verb some APIs expose.
const MethodUpdate = "UPDATE"

// Endpoint declares a single remote operation: a verb, a path template, the
// converters applied to the call arguments, and the func decoding the
// response. An Endpoint holds no per-call state and is safe for concurrent
// use; it is typically declared once, at package level, and called from the
// methods of a concrete API client.
type Endpoint[T any] struct {
	method string
	path   string
	args   []Converter
	params map[string]Converter
	dec    DecodeResponseFunc[T]
}

// NewEndpoint constructs an Endpoint. The path template is relative to the
// server base URL of the Requester the endpoint is called with, see
// FormatPath for its syntax. A nil dec discards the response body.
func NewEndpoint[T any](method, path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	if dec == nil {
		dec = func(_ context.Context, r *http.Response) (T, error) {
			var zero T
			_, err := io.Copy(ioutil.Discard, r.Body)
			return zero, err
		}
	}
	cfg := endpointConfig{params: map[string]Converter{}}
	for _, option := range options {
		option(&cfg)
	}
	return &Endpoint[T]{
		method: method,
		path:   path,
		args:   cfg.args,
		params: cfg.params,
		dec:    dec,
	}
}

// Get constructs a GET Endpoint.
func Get[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(http.MethodGet, path, dec, options...)
}

// Post constructs a POST Endpoint.
func Post[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(http.MethodPost, path, dec, options...)
}

// Put constructs a PUT Endpoint.
func Put[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(http.MethodPut, path, dec, options...)
}

// Patch constructs a PATCH Endpoint.
func Patch[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(http.MethodPatch, path, dec, options...)
}

// Delete constructs a DELETE Endpoint.
func Delete[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(http.MethodDelete, path, dec, options...)
}

// Update constructs an Endpoint using the UPDATE verb.
func Update[T any](path string, dec DecodeResponseFunc[T], options ...EndpointOption) *Endpoint[T] {
	return NewEndpoint(MethodUpdate, path, dec, options...)
}

type endpointConfig struct {
	args   []Converter
	params map[string]Converter
}

// EndpointOption sets an optional parameter for endpoints.
type EndpointOption func(*endpointConfig)

// Args appends converters for positional call arguments. The n-th converter
// is applied to the n-th argument. A nil converter means String.
func Args(converters ...Converter) EndpointOption {
	return func(cfg *endpointConfig) {
		for _, c := range converters {
			if c == nil {
				c = String
			}
			cfg.args = append(cfg.args, c)
		}
	}
}

// Param declares a named call argument, sent as the query parameter name
// after conversion by c. A nil converter means String.
func Param(name string, c Converter) EndpointOption {
	return func(cfg *endpointConfig) {
		if c == nil {
			c = String
		}
		cfg.params[name] = c
	}
}

// Params declares several named call arguments at once.
func Params(converters map[string]Converter) EndpointOption {
	return func(cfg *endpointConfig) {
		for name, c := range converters {
			Param(name, c)(cfg)
		}
	}
}

// CallOption is an option of a single endpoint call: either a named
// argument, built with Named, or a RequestOption forwarded to the Requester.
type CallOption interface {
	callOption()
}

type namedArg struct {
	name  string
	value interface{}
}

func (namedArg) callOption() {}

// Named passes a named argument to an endpoint call. The endpoint must
// declare name with Param.
func Named(name string, value interface{}) CallOption {
	return namedArg{name: name, value: value}
}

// Request is the request type of the endpoint.Endpoint returned by
// Endpoint.Endpoint.
type Request struct {
	Args    []interface{}
	Options []CallOption
}

// Method returns the HTTP verb of the endpoint.
func (e *Endpoint[T]) Method() string { return e.method }

// Path returns the path template of the endpoint.
func (e *Endpoint[T]) Path() string { return e.path }

// Call invokes the endpoint through r. Positional args fill the path
// template, named arguments become query parameters, and request options
// are forwarded to r. The decoded response is returned.
func (e *Endpoint[T]) Call(ctx context.Context, r Requester, args []interface{}, options ...CallOption) (T, error) {
	return e.Endpoint(r)(ctx, Request{Args: args, Options: options})
}

// Endpoint returns a usable endpoint.Endpoint that invokes the remote
// operation through r, so that it can be wrapped in middlewares.
func (e *Endpoint[T]) Endpoint(r Requester) endpoint.Endpoint[Request, T] {
	return func(ctx context.Context, request Request) (T, error) {
		var zero T

		path, options, err := e.encode(request)
		if err != nil {
			return zero, err
		}

		resp, err := r.Request(ctx, e.method, path, options...)
		if err != nil {
			return zero, err
		}
		defer resp.Body.Close()

		return e.dec(ctx, resp)
	}
}

func (e *Endpoint[T]) encode(request Request) (string, []RequestOption, error) {
	if len(request.Args) > len(e.args) {
		return "", nil, &ArgumentError{Index: len(e.args), Err: ErrTooManyArgs}
	}
	converted := make([]string, len(request.Args))
	for i, arg := range request.Args {
		s, err := e.args[i](arg)
		if err != nil {
			return "", nil, &ArgumentError{Index: i, Err: err}
		}
		converted[i] = s
	}

	path, err := FormatPath(e.path, converted)
	if err != nil {
		return "", nil, err
	}

	var (
		query   url.Values
		options []RequestOption
	)
	for _, option := range request.Options {
		switch o := option.(type) {
		case namedArg:
			c, ok := e.params[o.name]
			if !ok {
				return "", nil, &ArgumentError{Name: o.name, Index: -1, Err: ErrUnknownParam}
			}
			s, err := c(o.value)
			if err != nil {
				return "", nil, &ArgumentError{Name: o.name, Index: -1, Err: err}
			}
			if query == nil {
				query = url.Values{}
			}
			query.Add(o.name, s)
		case RequestOption:
			if o != nil {
				options = append(options, o)
			}
		}
	}
	if len(query) > 0 {
		options = append(options, Query(query))
	}
	return path, options, nil
}
