// Package zipkin provides client-side Zipkin instrumentation for endpoints
// and for the HTTP requests they issue, propagating spans with B3 headers.
package zipkin
