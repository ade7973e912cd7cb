package http

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestOption sets an optional parameter of a single request. Request
// options are also accepted by Endpoint.Call, which forwards them to the
// Requester untouched.
type RequestOption func(*requestConfig)

func (RequestOption) callOption() {}

type requestConfig struct {
	query      url.Values
	header     http.Header
	cookies    []*http.Cookie
	body       func() (io.Reader, string, error)
	timeout    time.Duration
	hasTimeout bool
}

func newRequestConfig(options []RequestOption) *requestConfig {
	cfg := &requestConfig{
		query:  url.Values{},
		header: http.Header{},
	}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// Query adds the given values to the query string of the request. Values
// already present in the request path are kept.
func Query(values url.Values) RequestOption {
	return func(cfg *requestConfig) {
		for k, vs := range values {
			for _, v := range vs {
				cfg.query.Add(k, v)
			}
		}
	}
}

// QueryParam adds a single key-value pair to the query string.
func QueryParam(key, value string) RequestOption {
	return func(cfg *requestConfig) { cfg.query.Add(key, value) }
}

// Header sets a header on the request.
func Header(key, value string) RequestOption {
	return func(cfg *requestConfig) { cfg.header.Set(key, value) }
}

// Headers sets every header in h on the request.
func Headers(h http.Header) RequestOption {
	return func(cfg *requestConfig) {
		for k, vs := range h {
			cfg.header.Del(k)
			for _, v := range vs {
				cfg.header.Add(k, v)
			}
		}
	}
}

// Cookie adds a cookie to the request.
func Cookie(c *http.Cookie) RequestOption {
	return func(cfg *requestConfig) { cfg.cookies = append(cfg.cookies, c) }
}

// Timeout sets the timeout of the request, overriding the client default.
// A zero or negative duration disables the timeout.
func Timeout(d time.Duration) RequestOption {
	return func(cfg *requestConfig) {
		cfg.timeout = d
		cfg.hasTimeout = true
	}
}

// Body sets the request body. An empty contentType leaves the Content-Type
// header alone.
func Body(r io.Reader, contentType string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.body = func() (io.Reader, string, error) { return r, contentType, nil }
	}
}

// JSONBody serializes v as JSON into the request body.
func JSONBody(v interface{}) RequestOption {
	return func(cfg *requestConfig) {
		cfg.body = func() (io.Reader, string, error) {
			var b bytes.Buffer
			if err := json.NewEncoder(&b).Encode(v); err != nil {
				return nil, "", err
			}
			return &b, "application/json; charset=utf-8", nil
		}
	}
}

// XMLBody serializes v as XML into the request body.
func XMLBody(v interface{}) RequestOption {
	return func(cfg *requestConfig) {
		cfg.body = func() (io.Reader, string, error) {
			var b bytes.Buffer
			if err := xml.NewEncoder(&b).Encode(v); err != nil {
				return nil, "", err
			}
			return &b, "text/xml; charset=utf-8", nil
		}
	}
}

// FormBody sends values as an URL-encoded form.
func FormBody(values url.Values) RequestOption {
	return func(cfg *requestConfig) {
		cfg.body = func() (io.Reader, string, error) {
			return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", nil
		}
	}
}
