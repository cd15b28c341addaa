package observability

import (
	"strconv"

	"github.com/corrlab/weft/metrics"
)

// MetricsObserver records request outcomes onto a metrics collector:
// a requests_total counter and a request_duration_seconds histogram,
// both labeled by operation and status code.
type MetricsObserver struct {
	requests metrics.Counter
	duration metrics.Histogram
}

// NewMetricsObserver creates a MetricsObserver backed by the given
// collector.
func NewMetricsObserver(collector metrics.Collector) *MetricsObserver {
	return &MetricsObserver{
		requests: collector.Counter(
			"requests_total",
			"Total requests by operation and status",
			[]string{"operation", "status"},
		),
		duration: collector.Histogram(
			"request_duration_seconds",
			"Request duration in seconds by operation and status",
			[]string{"operation", "status"},
			nil,
		),
	}
}

// ObserveRequest records the request onto both series.
func (o *MetricsObserver) ObserveRequest(rc RequestContext) {
	status := strconv.Itoa(rc.Status)
	o.requests.WithLabelValues(rc.Operation, status).Inc()
	o.duration.WithLabelValues(rc.Operation, status).Observe(rc.Duration.Seconds())
}
