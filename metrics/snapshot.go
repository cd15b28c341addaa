package metrics

import (
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// Series kinds reported by Snapshot.
const (
	KindCounter   = "counter"
	KindGauge     = "gauge"
	KindHistogram = "histogram"
	KindSummary   = "summary"
	KindUntyped   = "untyped"
)

// Series is one metric series at a point in time: a name, its kind, the
// label values identifying it, and its current value state.
type Series struct {
	// Name is the metric name the series belongs to.
	Name string

	// Kind is one of the Kind constants.
	Kind string

	// Labels holds the label name/value pairs identifying this series,
	// including the constant service label.
	Labels map[string]string

	// Value is the current value for counter and gauge series; zero for
	// histogram and summary series.
	Value float64

	// Count is the observation count for histogram and summary series.
	Count uint64

	// Sum is the observation sum for histogram and summary series.
	Sum float64
}

// Snapshot returns a consistent point-in-time read of every series in the
// registry, ordered by metric name and then by label values. Increments
// running concurrently may land before or after the snapshot per series,
// but a series is never read in a torn state.
func (r *Registry) Snapshot() ([]Series, error) {
	families, err := r.Prom.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metric families: %w", err)
	}

	var out []Series
	for _, family := range families {
		kind := familyKind(family.GetType())

		series := make([]Series, 0, len(family.GetMetric()))
		for _, m := range family.GetMetric() {
			s := Series{
				Name:   family.GetName(),
				Kind:   kind,
				Labels: make(map[string]string, len(m.GetLabel())),
			}
			for _, lp := range m.GetLabel() {
				s.Labels[lp.GetName()] = lp.GetValue()
			}

			switch {
			case m.Counter != nil:
				s.Value = m.Counter.GetValue()
			case m.Gauge != nil:
				s.Value = m.Gauge.GetValue()
			case m.Histogram != nil:
				s.Count = m.Histogram.GetSampleCount()
				s.Sum = m.Histogram.GetSampleSum()
			case m.Summary != nil:
				s.Count = m.Summary.GetSampleCount()
				s.Sum = m.Summary.GetSampleSum()
			case m.Untyped != nil:
				s.Value = m.Untyped.GetValue()
			}
			series = append(series, s)
		}

		// Gather sorts families by name; series within a family get a
		// deterministic order here.
		sort.Slice(series, func(i, j int) bool {
			return labelKey(series[i].Labels) < labelKey(series[j].Labels)
		})
		out = append(out, series...)
	}

	return out, nil
}

func familyKind(t dto.MetricType) string {
	switch t {
	case dto.MetricType_COUNTER:
		return KindCounter
	case dto.MetricType_GAUGE:
		return KindGauge
	case dto.MetricType_HISTOGRAM:
		return KindHistogram
	case dto.MetricType_SUMMARY:
		return KindSummary
	default:
		return KindUntyped
	}
}

// labelKey builds a deterministic sort key from a label set.
func labelKey(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
		b.WriteByte(',')
	}
	return b.String()
}
