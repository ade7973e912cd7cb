package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/restkit/endpoint"
)

func testFailingEndpoint(t *testing.T, breaker endpoint.Middleware[struct{}, struct{}], primeWith int, shouldPass func(int) bool, openCircuitError string) {
	// Create a mock endpoint and wrap it with the breaker.
	m := mock{}
	var e endpoint.Endpoint[struct{}, struct{}]
	e = m.endpoint
	e = breaker(e)

	// Prime the endpoint with successful requests.
	for i := 0; i < primeWith; i++ {
		if _, err := e(context.Background(), struct{}{}); err != nil {
			t.Fatalf("during priming, got error: %v", err)
		}
	}

	// Switch the endpoint to start throwing errors.
	m.err = errors.New("tragedy+disaster")
	m.thru = 0

	// The first several should be allowed through and yield our error.
	for i := 0; shouldPass(i); i++ {
		if _, err := e(context.Background(), struct{}{}); err != m.err {
			t.Fatalf("want %v, have %v", m.err, err)
		}
	}
	thru := m.thru

	// But the rest should be blocked by an open circuit.
	for i := 0; i < 10; i++ {
		if _, err := e(context.Background(), struct{}{}); err == nil || err.Error() != openCircuitError {
			t.Fatalf("want %q, have %v", openCircuitError, err)
		}
	}

	// Make sure none of those got through.
	if want, have := thru, m.thru; want != have {
		t.Errorf("want %d, have %d", want, have)
	}
}

// testIgnoredErrors checks that errors the breaker is told to ignore are
// returned to the caller but never open the circuit.
func testIgnoredErrors(t *testing.T, breaker endpoint.Middleware[struct{}, struct{}], ignored error, calls int) {
	m := mock{err: ignored}
	e := breaker(m.endpoint)

	for i := 0; i < calls; i++ {
		if _, err := e(context.Background(), struct{}{}); err != ignored {
			t.Fatalf("call %d: want %v, have %v", i, ignored, err)
		}
	}
	if want, have := calls, m.thru; want != have {
		t.Errorf("want %d calls through, have %d", want, have)
	}
}

type mock struct {
	thru int
	err  error
}

func (m *mock) endpoint(context.Context, struct{}) (struct{}, error) {
	m.thru++
	return struct{}{}, m.err
}
