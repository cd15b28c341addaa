package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func newTestRegistry() *Registry {
	return NewRegistry(Config{
		Address:     Ptr(""), // no listener in tests
		ServiceName: "test-service",
	})
}

// --- Instrument creation ---

func TestCounter_GetOrCreate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	c1 := r.Counter("requests_total", "Total requests", []string{"status"})
	c2 := r.Counter("requests_total", "Total requests", []string{"status"})
	if c1 != c2 {
		t.Error("expected the same counter instance for the same name")
	}
}

func TestInstruments_DistinctNames(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	c1 := r.Counter("a_total", "A", nil)
	c2 := r.Counter("b_total", "B", nil)
	if c1 == c2 {
		t.Error("expected distinct counters for distinct names")
	}
}

func TestGauge_SetAndMove(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	g := r.Gauge("queue_depth", "Queue depth", []string{"queue"})
	g.WithLabelValues("spans").Set(10)
	g.WithLabelValues("spans").Inc()
	g.WithLabelValues("spans").Dec()
	g.WithLabelValues("spans").Add(5)
	g.WithLabelValues("spans").Sub(3)

	snap := seriesByName(t, r, "queue_depth")
	if len(snap) != 1 {
		t.Fatalf("expected 1 series, got %d", len(snap))
	}
	if snap[0].Value != 12 {
		t.Errorf("expected gauge value 12, got %v", snap[0].Value)
	}
}

// --- Concurrency ---

func TestCounter_ConcurrentIncrementsSumExactly(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()
	c := r.Counter("race_total", "Race test counter", []string{"status"})

	const workers = 50
	const perWorker = 200

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				c.WithLabelValues("200").Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	snap := seriesByName(t, r, "race_total")
	if len(snap) != 1 {
		t.Fatalf("expected 1 series, got %d", len(snap))
	}
	if got, want := snap[0].Value, float64(workers*perWorker); got != want {
		t.Errorf("expected counter value %v, got %v", want, got)
	}
}

func TestRegistry_ConcurrentGetOrCreate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			c := r.Counter("shared_total", "Shared", []string{"k"})
			c.WithLabelValues("v").Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	snap := seriesByName(t, r, "shared_total")
	if len(snap) != 1 {
		t.Fatalf("expected 1 series, got %d", len(snap))
	}
	if snap[0].Value != 32 {
		t.Errorf("expected 32 increments, got %v", snap[0].Value)
	}
}

// --- Snapshot ---

func TestSnapshot_SeriesContent(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	c := r.Counter("requests_total", "Total requests", []string{"operation", "status"})
	c.WithLabelValues("GET /users", "200").Add(3)
	c.WithLabelValues("GET /users", "500").Inc()

	h := r.Histogram("request_duration_seconds", "Request duration", []string{"operation"}, nil)
	h.WithLabelValues("GET /users").Observe(0.1)
	h.WithLabelValues("GET /users").Observe(0.3)

	snap, err := r.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	durations := filterSeries(snap, "request_duration_seconds")
	if len(durations) != 1 {
		t.Fatalf("expected 1 histogram series, got %d", len(durations))
	}
	if durations[0].Kind != KindHistogram {
		t.Errorf("expected kind %q, got %q", KindHistogram, durations[0].Kind)
	}
	if durations[0].Count != 2 {
		t.Errorf("expected 2 observations, got %d", durations[0].Count)
	}
	if durations[0].Sum < 0.39 || durations[0].Sum > 0.41 {
		t.Errorf("expected sum ~0.4, got %v", durations[0].Sum)
	}

	requests := filterSeries(snap, "requests_total")
	if len(requests) != 2 {
		t.Fatalf("expected 2 counter series, got %d", len(requests))
	}
	for _, s := range requests {
		if s.Labels["service"] != "test-service" {
			t.Errorf("expected service label, got %v", s.Labels)
		}
		switch s.Labels["status"] {
		case "200":
			if s.Value != 3 {
				t.Errorf("expected status=200 value 3, got %v", s.Value)
			}
		case "500":
			if s.Value != 1 {
				t.Errorf("expected status=500 value 1, got %v", s.Value)
			}
		default:
			t.Errorf("unexpected series labels %v", s.Labels)
		}
	}
}

func TestSnapshot_Ordered(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	r.Counter("zz_total", "Z", nil).Inc()
	r.Counter("aa_total", "A", nil).Inc()

	snap, err := r.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap) != 2 {
		t.Fatalf("expected 2 series, got %d", len(snap))
	}
	if snap[0].Name != "aa_total" || snap[1].Name != "zz_total" {
		t.Errorf("expected series ordered by name, got %q then %q", snap[0].Name, snap[1].Name)
	}
}

// --- Exposition ---

func TestExposition_TextFormat(t *testing.T) {
	t.Parallel()
	r := NewRegistry(Config{ServiceName: "expo-service"})

	c := r.Counter("requests_total", "Total requests", []string{"status"})
	c.WithLabelValues("200").Add(7)

	srv := httptest.NewServer(r.Server.Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	text := string(body)

	if !strings.Contains(text, "# HELP requests_total Total requests") {
		t.Error("expected HELP metadata line")
	}
	if !strings.Contains(text, "# TYPE requests_total counter") {
		t.Error("expected TYPE metadata line")
	}
	if !strings.Contains(text, `requests_total{service="expo-service",status="200"} 7`) {
		t.Errorf("expected series line, got:\n%s", text)
	}
}

func TestRuntimeCollectors_Toggle(t *testing.T) {
	t.Parallel()
	r := NewRegistry(Config{
		Address:                 Ptr(""),
		ServiceName:             "test-service",
		EnableRuntimeCollectors: true,
	})

	snap, err := r.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, s := range snap {
		if strings.HasPrefix(s.Name, "go_") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected go_ runtime series when runtime collectors are enabled")
	}

	off := newTestRegistry()
	offSnap, err := off.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(offSnap) != 0 {
		t.Errorf("expected empty snapshot without runtime collectors, got %d series", len(offSnap))
	}
}

// --- Interface compliance ---

func TestRegistry_ImplementsCollector(t *testing.T) {
	t.Parallel()
	var _ Collector = newTestRegistry()
}

// --- helpers ---

func seriesByName(t *testing.T, r *Registry, name string) []Series {
	t.Helper()
	snap, err := r.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	return filterSeries(snap, name)
}

func filterSeries(snap []Series, name string) []Series {
	var out []Series
	for _, s := range snap {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
