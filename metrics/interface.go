package metrics

// Collector provides an interface for creating and exposing application
// metrics. It abstracts metric operations with support for counters,
// histograms, gauges, and summaries.
//
// Instruments are identified by name: requesting the same name again
// returns the already-created instrument, so independent call sites can
// share a series without coordinating creation order. All instruments are
// safe for concurrent use from multiple goroutines.
//
// This interface is implemented by the concrete *Registry type and does
// not expose any Prometheus-specific types, allowing alternative
// implementations or testing mocks.
type Collector interface {
	// Counter returns the counter registered under name, creating it on
	// first use. Counters are cumulative metrics that only increase over
	// time (e.g., total requests).
	//
	// Example:
	//   counter := m.Counter("http_requests_total", "Total HTTP requests", []string{"method", "status"})
	//   counter.WithLabelValues("GET", "200").Inc()
	Counter(name, help string, labels []string) Counter

	// Gauge returns the gauge registered under name, creating it on
	// first use. Gauges represent values that can go up or down (e.g.,
	// active connections, queue depth).
	Gauge(name, help string, labels []string) Gauge

	// Histogram returns the histogram registered under name, creating it
	// on first use. Histograms track distributions of values (e.g.,
	// request durations) across configurable buckets. Nil buckets use the
	// Prometheus defaults.
	//
	// Example:
	//   hist := m.Histogram("request_duration_seconds", "Request duration", []string{"endpoint"}, nil)
	//   hist.WithLabelValues("/api/search").Observe(0.25)
	Histogram(name, help string, labels []string, buckets []float64) Histogram

	// Summary returns the summary registered under name, creating it on
	// first use. Summaries calculate streaming quantiles on the client
	// side; objectives map quantile ranks to their allowed error.
	Summary(name, help string, labels []string, objectives map[float64]float64) Summary

	// Snapshot returns a consistent point-in-time read of every series
	// in the registry, ordered by name and then by label values.
	// Increments running concurrently with a snapshot may be included or
	// excluded per series, but never corrupt it.
	Snapshot() ([]Series, error)
}
