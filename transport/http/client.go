package http

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultTimeout is applied to every request that doesn't carry its own
	// Timeout option, unless the client was built with ClientTimeout.
	DefaultTimeout = 30 * time.Second

	// MaxErrorBodySize bounds how much of an error response is read into
	// StatusError.Body.
	MaxErrorBodySize = 1 << 20
)

// HTTPClient is an interface that models *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester performs a request relative to some server. Endpoints only
// depend on this interface, *Client is the canonical implementation.
type Requester interface {
	Request(ctx context.Context, method, path string, options ...RequestOption) (*http.Response, error)
}

// Client issues requests against a server base URL. It owns the HTTPClient
// it sends requests with; sessions, cookies jars and connection reuse are the
// business of that HTTPClient. A Client is safe for concurrent use.
type Client struct {
	client    HTTPClient
	base      *url.URL
	timeout   time.Duration
	before    []RequestFunc
	after     []ClientResponseFunc
	finalizer []ClientFinalizerFunc
	logger    log.Logger
}

// NewClient constructs a Client for the given server base URL, which must be
// absolute. Relative paths are resolved against it following RFC 3986, so a
// base URL that should act as a directory must end with a slash.
func NewClient(server string, options ...ClientOption) (*Client, error) {
	base, err := url.Parse(server)
	if err != nil {
		return nil, err
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("server URL %q is not absolute", server)
	}
	c := &Client{
		client:  http.DefaultClient,
		base:    base,
		timeout: DefaultTimeout,
		logger:  log.NewNopLogger(),
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// ClientOption sets an optional parameter for clients.
type ClientOption func(*Client)

// SetClient sets the underlying HTTP client used for requests.
// By default, http.DefaultClient is used.
func SetClient(client HTTPClient) ClientOption {
	return func(c *Client) { c.client = client }
}

// ClientTimeout replaces DefaultTimeout for every request of the client.
// A zero or negative duration disables the default timeout.
func ClientTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// ClientBefore adds one or more RequestFuncs to be applied to the outgoing
// HTTP request before it's invoked.
func ClientBefore(before ...RequestFunc) ClientOption {
	return func(c *Client) { c.before = append(c.before, before...) }
}

// ClientAfter adds one or more ClientResponseFuncs, which are applied to the
// incoming HTTP response before its status code is checked.
func ClientAfter(after ...ClientResponseFunc) ClientOption {
	return func(c *Client) { c.after = append(c.after, after...) }
}

// ClientFinalizer adds one or more ClientFinalizerFuncs to be executed at the
// end of every HTTP request. By default, no finalizer is registered.
func ClientFinalizer(f ...ClientFinalizerFunc) ClientOption {
	return func(c *Client) { c.finalizer = append(c.finalizer, f...) }
}

// ClientLogger sets the logger the client reports every request to, at debug
// level. By default nothing is logged.
func ClientLogger(logger log.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// Server returns a copy of the server base URL.
func (c *Client) Server() *url.URL {
	u := *c.base
	return &u
}

// URL resolves path against the server base URL.
func (c *Client) URL(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	return c.base.ResolveReference(ref), nil
}

// Request sends a request for path, resolved against the server base URL,
// and returns the response if its status code is 2xx. Any other status code
// yields a *StatusError. Errors returned by the HTTPClient are returned as is.
//
// The caller must close the body of the returned response; closing it also
// releases the timeout of the request.
func (c *Client) Request(ctx context.Context, method, path string, options ...RequestOption) (resp *http.Response, err error) {
	cfg := newRequestConfig(options)

	timeout := c.timeout
	if cfg.hasTimeout {
		timeout = cfg.timeout
	}
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	var (
		begin    = time.Now()
		target   = path
		received *http.Response
	)
	defer func() {
		status := 0
		if received != nil {
			status = received.StatusCode
		}
		if len(c.finalizer) > 0 {
			fctx := context.WithValue(ctx, ContextKeyRequestMethod, method)
			fctx = context.WithValue(fctx, ContextKeyRequestURL, target)
			if received != nil {
				fctx = context.WithValue(fctx, ContextKeyResponseHeaders, received.Header)
				fctx = context.WithValue(fctx, ContextKeyResponseSize, received.ContentLength)
				fctx = context.WithValue(fctx, ContextKeyResponseStatus, status)
			}
			for _, f := range c.finalizer {
				f(fctx, err)
			}
		}
		if err != nil {
			cancel()
		}
		level.Debug(c.logger).Log("method", method, "url", target, "status", status, "took", time.Since(begin), "err", err)
	}()

	u, err := c.URL(path)
	if err != nil {
		return nil, TransportError{DomainNewRequest, err}
	}
	if len(cfg.query) > 0 {
		if u.RawQuery != "" {
			u.RawQuery += "&" + cfg.query.Encode()
		} else {
			u.RawQuery = cfg.query.Encode()
		}
	}
	target = u.String()

	var (
		body        io.Reader
		contentType string
	)
	if cfg.body != nil {
		if body, contentType, err = cfg.body(); err != nil {
			return nil, TransportError{DomainEncode, err}
		}
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, TransportError{DomainNewRequest, err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range cfg.header {
		req.Header[k] = vs
	}
	for _, cookie := range cfg.cookies {
		req.AddCookie(cookie)
	}

	for _, f := range c.before {
		ctx = f(ctx, req)
	}

	received, err = c.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	for _, f := range c.after {
		ctx = f(ctx, received)
	}

	if received.StatusCode < 200 || received.StatusCode > 299 {
		defer received.Body.Close()
		data, readErr := ioutil.ReadAll(io.LimitReader(received.Body, MaxErrorBodySize))
		return nil, &StatusError{
			StatusCode: received.StatusCode,
			Status:     received.Status,
			Header:     received.Header,
			Body:       data,
			BodyErr:    readErr,
		}
	}

	received.Body = bodyWithCancel{ReadCloser: received.Body, cancel: cancel}
	return received, nil
}

// bodyWithCancel is a wrapper for an io.ReadCloser which also contains a
// context.CancelFunc, called when the body is closed.
type bodyWithCancel struct {
	io.ReadCloser

	cancel context.CancelFunc
}

func (bwc bodyWithCancel) Close() error {
	err := bwc.ReadCloser.Close()
	bwc.cancel()
	return err
}
