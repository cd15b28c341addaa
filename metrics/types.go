package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter represents a cumulative metric that only increases, used for
// totals such as request counts, errors, or bytes processed.
type Counter interface {
	// WithLabelValues returns the Counter for the given label values.
	// The number of label values must match the number of labels defined
	// when the counter was created.
	WithLabelValues(lvs ...string) Counter

	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter. The value must be >= 0.
	Add(val float64)
}

// Gauge represents a metric that can arbitrarily go up and down, used for
// values like active connections or queue depth.
type Gauge interface {
	// WithLabelValues returns the Gauge for the given label values.
	WithLabelValues(lvs ...string) Gauge

	// Set sets the gauge to an arbitrary value.
	Set(val float64)

	// Inc increments the gauge by 1.
	Inc()

	// Dec decrements the gauge by 1.
	Dec()

	// Add adds the given value to the gauge. The value can be negative.
	Add(val float64)

	// Sub subtracts the given value from the gauge.
	Sub(val float64)
}

// Histogram tracks the distribution of observations (e.g., request
// durations) across configurable buckets.
type Histogram interface {
	// WithLabelValues returns the Observer for the given label values.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation to the unlabeled series.
	Observe(val float64)
}

// Summary calculates streaming quantiles of observed values on the client
// side. Unlike histograms, summaries cannot be aggregated across instances.
type Summary interface {
	// WithLabelValues returns the Observer for the given label values.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation to the unlabeled series.
	Observe(val float64)
}

// Observer is the common interface for metrics that observe values
// (Histogram and Summary).
type Observer interface {
	// Observe adds a single observation to the metric.
	Observe(val float64)
}

// counterVec adapts prometheus.CounterVec to the Counter interface.
type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return &counter{metric: c.vec.WithLabelValues(lvs...)}
}

func (c *counterVec) Inc()            { c.vec.WithLabelValues().Inc() }
func (c *counterVec) Add(val float64) { c.vec.WithLabelValues().Add(val) }

// counter is a single labeled prometheus.Counter.
type counter struct {
	metric prometheus.Counter
}

// WithLabelValues on an already-labeled counter returns itself.
func (c *counter) WithLabelValues(...string) Counter { return c }

func (c *counter) Inc()            { c.metric.Inc() }
func (c *counter) Add(val float64) { c.metric.Add(val) }

// gaugeVec adapts prometheus.GaugeVec to the Gauge interface.
type gaugeVec struct {
	vec *prometheus.GaugeVec
}

func (g *gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return &gauge{metric: g.vec.WithLabelValues(lvs...)}
}

func (g *gaugeVec) Set(val float64) { g.vec.WithLabelValues().Set(val) }
func (g *gaugeVec) Inc()            { g.vec.WithLabelValues().Inc() }
func (g *gaugeVec) Dec()            { g.vec.WithLabelValues().Dec() }
func (g *gaugeVec) Add(val float64) { g.vec.WithLabelValues().Add(val) }
func (g *gaugeVec) Sub(val float64) { g.vec.WithLabelValues().Sub(val) }

// gauge is a single labeled prometheus.Gauge.
type gauge struct {
	metric prometheus.Gauge
}

// WithLabelValues on an already-labeled gauge returns itself.
func (g *gauge) WithLabelValues(...string) Gauge { return g }

func (g *gauge) Set(val float64) { g.metric.Set(val) }
func (g *gauge) Inc()            { g.metric.Inc() }
func (g *gauge) Dec()            { g.metric.Dec() }
func (g *gauge) Add(val float64) { g.metric.Add(val) }
func (g *gauge) Sub(val float64) { g.metric.Sub(val) }

// histogramVec adapts prometheus.HistogramVec to the Histogram interface.
type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Observer {
	return &observerMetric{metric: h.vec.WithLabelValues(lvs...)}
}

func (h *histogramVec) Observe(val float64) { h.vec.WithLabelValues().Observe(val) }

// summaryVec adapts prometheus.SummaryVec to the Summary interface.
type summaryVec struct {
	vec *prometheus.SummaryVec
}

func (s *summaryVec) WithLabelValues(lvs ...string) Observer {
	return &observerMetric{metric: s.vec.WithLabelValues(lvs...)}
}

func (s *summaryVec) Observe(val float64) { s.vec.WithLabelValues().Observe(val) }

// observerMetric is a single labeled prometheus.Observer.
type observerMetric struct {
	metric prometheus.Observer
}

func (o *observerMetric) Observe(val float64) { o.metric.Observe(val) }
