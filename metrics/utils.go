package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter returns the counter registered under name, creating and
// registering it on first use. The help text and label names are taken
// from the first call; later calls with the same name must pass the same
// label names.
//
// Example:
//
//	counter := reg.Counter("http_requests_total", "Total HTTP requests", []string{"method", "status"})
//	counter.WithLabelValues("GET", "200").Inc()
func (r *Registry) Counter(name, help string, labels []string) Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.counters[name]; ok {
		return c
	}

	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: name, Help: help},
		labels,
	)
	r.registerer.MustRegister(vec)

	c := &counterVec{vec: vec}
	r.counters[name] = c
	return c
}

// Gauge returns the gauge registered under name, creating and registering
// it on first use.
//
// Example:
//
//	gauge := reg.Gauge("active_connections", "Number of active connections", []string{"pool"})
//	gauge.WithLabelValues("postgres").Set(42)
func (r *Registry) Gauge(name, help string, labels []string) Gauge {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.gauges[name]; ok {
		return g
	}

	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: name, Help: help},
		labels,
	)
	r.registerer.MustRegister(vec)

	g := &gaugeVec{vec: vec}
	r.gauges[name] = g
	return g
}

// Histogram returns the histogram registered under name, creating and
// registering it on first use. Nil buckets use the Prometheus defaults.
//
// Example:
//
//	hist := reg.Histogram(
//	    "request_duration_seconds",
//	    "Request duration in seconds",
//	    []string{"endpoint"},
//	    []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
//	)
//	hist.WithLabelValues("/api/search").Observe(0.25)
func (r *Registry) Histogram(name, help string, labels []string, buckets []float64) Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.histograms[name]; ok {
		return h
	}

	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets},
		labels,
	)
	r.registerer.MustRegister(vec)

	h := &histogramVec{vec: vec}
	r.histograms[name] = h
	return h
}

// Summary returns the summary registered under name, creating and
// registering it on first use. Objectives map quantile ranks to their
// allowed error.
//
// Example:
//
//	summary := reg.Summary(
//	    "api_latency_seconds",
//	    "API request latency in seconds",
//	    []string{"endpoint"},
//	    map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
//	)
//	summary.WithLabelValues("/api/search").Observe(0.25)
func (r *Registry) Summary(name, help string, labels []string, objectives map[float64]float64) Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.summaries[name]; ok {
		return s
	}

	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{Name: name, Help: help, Objectives: objectives},
		labels,
	)
	r.registerer.MustRegister(vec)

	s := &summaryVec{vec: vec}
	r.summaries[name] = s
	return s
}
