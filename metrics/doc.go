// Package metrics provides a small instrumentation framework for API
// clients: backend-agnostic Counter, Gauge and Histogram interfaces, and an
// endpoint middleware reporting call counts and latencies through them.
// All metrics are safe for concurrent use.
//
// Label values are given as alternating key, value pairs with the With
// method. Backends that predeclare their label names, like Prometheus,
// receive them by name.
package metrics
