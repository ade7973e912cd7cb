// Package prometheus implements a Prometheus backend for package metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-kit/restkit/metrics"
)

// Prometheus has strong opinions about the dimensionality of fields. Users
// must predeclare every label name they intend to use. On every observation,
// labels with names that haven't been predeclared are silently dropped,
// and predeclared labels without values receive the value
// LabelValueUnknown.
var LabelValueUnknown = "unknown"

// Counter implements metrics.Counter via a Prometheus CounterVec.
type Counter struct {
	cv    *prometheus.CounterVec
	pairs map[string]string
}

// NewCounterFrom constructs and registers a Prometheus CounterVec,
// and returns a usable Counter object.
func NewCounterFrom(opts prometheus.CounterOpts, labelNames []string) *Counter {
	cv := prometheus.NewCounterVec(opts, labelNames)
	prometheus.MustRegister(cv)
	return NewCounter(cv, labelNames)
}

// NewCounter wraps the CounterVec and returns a usable Counter object. The
// labelNames must be the ones the CounterVec was created with.
func NewCounter(cv *prometheus.CounterVec, labelNames []string) *Counter {
	return &Counter{cv: cv, pairs: pairsFrom(labelNames)}
}

// With implements metrics.Counter.
func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{cv: c.cv, pairs: merge(c.pairs, labelValues)}
}

// Add implements metrics.Counter.
func (c *Counter) Add(delta float64) {
	c.cv.With(prometheus.Labels(c.pairs)).Add(delta)
}

// Gauge implements metrics.Gauge via a Prometheus GaugeVec.
type Gauge struct {
	gv    *prometheus.GaugeVec
	pairs map[string]string
}

// NewGaugeFrom constructs and registers a Prometheus GaugeVec,
// and returns a usable Gauge object.
func NewGaugeFrom(opts prometheus.GaugeOpts, labelNames []string) *Gauge {
	gv := prometheus.NewGaugeVec(opts, labelNames)
	prometheus.MustRegister(gv)
	return NewGauge(gv, labelNames)
}

// NewGauge wraps the GaugeVec and returns a usable Gauge object.
func NewGauge(gv *prometheus.GaugeVec, labelNames []string) *Gauge {
	return &Gauge{gv: gv, pairs: pairsFrom(labelNames)}
}

// With implements metrics.Gauge.
func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{gv: g.gv, pairs: merge(g.pairs, labelValues)}
}

// Set implements metrics.Gauge.
func (g *Gauge) Set(value float64) {
	g.gv.With(prometheus.Labels(g.pairs)).Set(value)
}

// Add implements metrics.Gauge.
func (g *Gauge) Add(delta float64) {
	g.gv.With(prometheus.Labels(g.pairs)).Add(delta)
}

// Summary implements metrics.Histogram via a Prometheus SummaryVec. The
// difference between a Summary and a Histogram is that Summaries don't
// require predefined quantile buckets, but cannot be statistically
// aggregated.
type Summary struct {
	sv    *prometheus.SummaryVec
	pairs map[string]string
}

// NewSummaryFrom constructs and registers a Prometheus SummaryVec,
// and returns a usable Summary object.
func NewSummaryFrom(opts prometheus.SummaryOpts, labelNames []string) *Summary {
	sv := prometheus.NewSummaryVec(opts, labelNames)
	prometheus.MustRegister(sv)
	return NewSummary(sv, labelNames)
}

// NewSummary wraps the SummaryVec and returns a usable Summary object.
func NewSummary(sv *prometheus.SummaryVec, labelNames []string) *Summary {
	return &Summary{sv: sv, pairs: pairsFrom(labelNames)}
}

// With implements metrics.Histogram.
func (s *Summary) With(labelValues ...string) metrics.Histogram {
	return &Summary{sv: s.sv, pairs: merge(s.pairs, labelValues)}
}

// Observe implements metrics.Histogram.
func (s *Summary) Observe(value float64) {
	s.sv.With(prometheus.Labels(s.pairs)).Observe(value)
}

// Histogram implements metrics.Histogram via a Prometheus HistogramVec.
//
// For more information on Prometheus histograms and summaries, refer to
// http://prometheus.io/docs/practices/histograms.
type Histogram struct {
	hv    *prometheus.HistogramVec
	pairs map[string]string
}

// NewHistogramFrom constructs and registers a Prometheus HistogramVec,
// and returns a usable Histogram object.
func NewHistogramFrom(opts prometheus.HistogramOpts, labelNames []string) *Histogram {
	hv := prometheus.NewHistogramVec(opts, labelNames)
	prometheus.MustRegister(hv)
	return NewHistogram(hv, labelNames)
}

// NewHistogram wraps the HistogramVec and returns a usable Histogram object.
func NewHistogram(hv *prometheus.HistogramVec, labelNames []string) *Histogram {
	return &Histogram{hv: hv, pairs: pairsFrom(labelNames)}
}

// With implements metrics.Histogram.
func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{hv: h.hv, pairs: merge(h.pairs, labelValues)}
}

// Observe implements metrics.Histogram.
func (h *Histogram) Observe(value float64) {
	h.hv.With(prometheus.Labels(h.pairs)).Observe(value)
}

func pairsFrom(labelNames []string) map[string]string {
	p := make(map[string]string, len(labelNames))
	for _, name := range labelNames {
		p[name] = LabelValueUnknown
	}
	return p
}

func merge(orig map[string]string, labelValues []string) map[string]string {
	lvs := metrics.LabelValues(nil).With(labelValues...)
	merged := make(map[string]string, len(orig))
	for k, v := range orig {
		merged[k] = v
	}
	for i := 0; i < len(lvs); i += 2 {
		if _, ok := orig[lvs[i]]; ok {
			merged[lvs[i]] = lvs[i+1]
		}
	}
	return merged
}
