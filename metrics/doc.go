// Package metrics maintains the application's metric instruments behind a
// small interface and exposes them for scraping in the Prometheus text
// exposition format.
//
// # Architecture
//
// A Registry owns a single Prometheus registry. Instruments (Counter,
// Gauge, Histogram, Summary) are created lazily and cached by name, so any
// call site can ask for an instrument without coordinating creation order:
//
//	reg := metrics.NewRegistry(metrics.Config{ServiceName: "user-service"})
//	requests := reg.Counter("requests_total", "Total requests", []string{"operation", "status"})
//	requests.WithLabelValues("GET /users", "200").Inc()
//
// Every series carries a constant service label. All instruments are safe
// for concurrent use; increments from concurrent goroutines are never
// lost.
//
// Metrics are aggregate by design: series are identified by name and label
// values and are never keyed by trace or request id. Correlating an
// individual request belongs to the tracer and logger packages.
//
// # Exposition
//
// The Registry serves /metrics over HTTP (promhttp) at the configured
// address. The handler has a timeout so scrapes respond in bounded time
// even with many series. Snapshot offers the same point-in-time read
// programmatically as an ordered []Series.
//
// # Cardinality
//
// The registry does not cap label cardinality. Every distinct label-value
// combination allocates a series that lives for the process lifetime, so
// unbounded label values (user ids, raw URLs) can exhaust memory. Keep
// label values bounded.
package metrics
