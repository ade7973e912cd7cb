package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/restkit/metrics"
	httptransport "github.com/go-kit/restkit/transport/http"
)

type failed struct{ err error }

func (f failed) Failed() error { return f.err }

func TestInstrumentingMiddleware(t *testing.T) {
	var (
		requests = newRecorder()
		latency  = newRecorder()
		outcomes = []struct {
			response interface{}
			err      error
		}{
			{"ok", nil},
			{nil, &httptransport.StatusError{StatusCode: 404}},
			{nil, fmt.Errorf("wrapped: %w", &httptransport.StatusError{StatusCode: 503})},
			{nil, errors.New("connection refused")},
			{failed{errors.New("out of stock")}, nil},
			{failed{}, nil},
		}
		call int
	)

	e := metrics.InstrumentingMiddleware[struct{}, interface{}]("search", counter{requests}, histogram{latency})(
		func(context.Context, struct{}) (interface{}, error) {
			o := outcomes[call]
			call++
			return o.response, o.err
		},
	)
	for range outcomes {
		e(context.Background(), struct{}{})
	}

	want := map[string]float64{
		"endpoint=search,code=2xx":    2,
		"endpoint=search,code=404":    1,
		"endpoint=search,code=503":    1,
		"endpoint=search,code=error":  1,
		"endpoint=search,code=failed": 1,
	}
	for labels, n := range want {
		if have := requests.sum(labels); n != have {
			t.Errorf("requests %s: want %f, have %f", labels, n, have)
		}
		if have := float64(latency.count(labels)); n != have {
			t.Errorf("latency %s: want %f observations, have %f", labels, n, have)
		}
	}
}

// recorder is a Counter and Histogram keeping every value by label set.
type recorder struct {
	mtx    *sync.Mutex
	lvs    []string
	values map[string][]float64
}

func newRecorder() *recorder {
	return &recorder{mtx: &sync.Mutex{}, values: map[string][]float64{}}
}

func (r *recorder) with(labelValues ...string) *recorder {
	return &recorder{mtx: r.mtx, lvs: metrics.LabelValues(r.lvs).With(labelValues...), values: r.values}
}

func (r *recorder) record(v float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	pairs := make([]string, 0, len(r.lvs)/2)
	for i := 0; i < len(r.lvs); i += 2 {
		pairs = append(pairs, r.lvs[i]+"="+r.lvs[i+1])
	}
	key := strings.Join(pairs, ",")
	r.values[key] = append(r.values[key], v)
}

func (r *recorder) sum(key string) (total float64) {
	for _, v := range r.values[key] {
		total += v
	}
	return total
}

func (r *recorder) count(key string) int { return len(r.values[key]) }

type counter struct{ *recorder }

func (c counter) With(labelValues ...string) metrics.Counter {
	return counter{c.recorder.with(labelValues...)}
}
func (c counter) Add(delta float64) { c.record(delta) }

type histogram struct{ *recorder }

func (h histogram) With(labelValues ...string) metrics.Histogram {
	return histogram{h.recorder.with(labelValues...)}
}
func (h histogram) Observe(value float64) { h.record(value) }
