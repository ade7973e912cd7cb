// Package opencensus provides OpenCensus tracing for endpoints and for the
// HTTP client they call through.
package opencensus
