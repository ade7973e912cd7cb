// Package opentracing provides client-side OpenTracing instrumentation for
// endpoints and for the HTTP requests they issue.
package opentracing
