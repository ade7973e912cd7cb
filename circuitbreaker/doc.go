// Package circuitbreaker implements the circuit breaker pattern.
//
// Circuit breakers prevent thundering herds, and improve resiliency against
// intermittent errors. Every client-side endpoint should be wrapped in a
// circuit breaker. API errors the caller is responsible for, like a 404, are
// usually no sign of an unhealthy server: use IgnoreClientErrors to keep them
// from tripping the breaker.
package circuitbreaker
