package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry maintains the application's metric instruments and exposes them
// over HTTP in the Prometheus text exposition format.
//
// Instruments are created lazily and cached by name: the first call to
// Counter, Gauge, Histogram, or Summary with a given name registers the
// instrument; later calls with the same name return the cached one. The
// registry never caps label cardinality, so unbounded label values can
// exhaust memory; keeping cardinality bounded is the caller's job.
//
// Registry implements the Collector interface.
type Registry struct {
	// Prom is the underlying Prometheus registry, exposed so callers can
	// register custom collectors directly.
	Prom *prometheus.Registry

	// Server is the HTTP server for the /metrics endpoint, nil when the
	// endpoint is disabled by configuration.
	Server *http.Server

	// registerer wraps Prom with the constant service label.
	registerer prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*counterVec
	gauges     map[string]*gaugeVec
	histograms map[string]*histogramVec
	summaries  map[string]*summaryVec
}

// NewRegistry initializes a Registry from configuration.
//
// Every instrument is registered with a constant service label for
// aggregation and filtering in multi-service scrape setups. When
// cfg.EnableRuntimeCollectors is set, the Go runtime, process, and build
// info collectors are registered alongside the application instruments.
//
// The exposition handler carries a timeout so a scrape responds in bounded
// time even under high series cardinality.
//
// Example:
//
//	reg := metrics.NewRegistry(metrics.Config{
//	    ServiceName: "user-service",
//	})
//	go reg.Server.ListenAndServe()
//	// Scrape at http://localhost:9091/metrics
func NewRegistry(cfg Config) *Registry {
	promRegistry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		promRegistry,
	)

	if cfg.EnableRuntimeCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	r := &Registry{
		Prom:       promRegistry,
		registerer: registerer,
		counters:   make(map[string]*counterVec),
		gauges:     make(map[string]*gaugeVec),
		histograms: make(map[string]*histogramVec),
		summaries:  make(map[string]*summaryVec),
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{
			Timeout: 10 * time.Second,
		}))
		r.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}

	return r
}
