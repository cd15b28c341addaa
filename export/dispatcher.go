package export

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/corrlab/weft/tracer"
)

// Dispatcher is the asynchronous hand-off between span recording and span
// export. Finished spans are appended to a bounded in-memory queue; a single
// background goroutine batches them by size or age and flushes each batch to
// the configured Exporter with bounded exponential retry. A batch that still
// fails after the retry limit is dropped and counted, an observable
// degradation, never a request-level error.
//
// Enqueue never blocks: when the queue is full the span is dropped and the
// drop counter incremented, so memory stays bounded under sustained backend
// failure.
//
// Dispatcher implements the tracer.SpanSink interface.
type Dispatcher struct {
	cfg      Config
	exporter Exporter
	log      *zap.Logger

	queue    chan tracer.SpanData
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	exportedSpans   atomic.Uint64
	exportedBatches atomic.Uint64
	droppedSpans    atomic.Uint64
	droppedBatches  atomic.Uint64
}

// Stats is a point-in-time snapshot of dispatcher counters, for exposing
// export health as metrics or in tests.
type Stats struct {
	ExportedSpans   uint64
	ExportedBatches uint64
	DroppedSpans    uint64
	DroppedBatches  uint64
}

// NewDispatcher creates a Dispatcher feeding exporter and starts its flush
// goroutine. A nil log disables diagnostics.
//
// Example:
//
//	exp, _ := export.NewOTLPExporter(export.Config{Endpoint: "tempo:4317", Insecure: true})
//	dispatcher := export.NewDispatcher(export.Config{}, exp, log)
//	defer dispatcher.Shutdown(context.Background())
func NewDispatcher(cfg Config, exporter Exporter, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		cfg:      cfg,
		exporter: exporter,
		log:      log,
		queue:    make(chan tracer.SpanData, cfg.queueSize()),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue implements tracer.SpanSink. It appends a finished span to the
// queue without ever blocking the calling goroutine; spans that do not fit
// are dropped and counted.
func (d *Dispatcher) Enqueue(span tracer.SpanData) {
	select {
	case <-d.stop:
		d.droppedSpans.Add(1)
		return
	default:
	}

	select {
	case d.queue <- span:
	default:
		d.droppedSpans.Add(1)
	}
}

// Stats returns the current counter values. Counters are monotonically
// increasing for the dispatcher's lifetime.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		ExportedSpans:   d.exportedSpans.Load(),
		ExportedBatches: d.exportedBatches.Load(),
		DroppedSpans:    d.droppedSpans.Load(),
		DroppedBatches:  d.droppedBatches.Load(),
	}
}

// Shutdown stops accepting spans, performs a best-effort flush of whatever
// is buffered within the configured grace period, shuts the exporter down
// and returns. It is safe to call more than once. The ctx bounds how long
// the caller is willing to wait for the whole sequence.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.stopOnce.Do(func() { close(d.stop) })

	select {
	case <-d.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, d.cfg.shutdownGrace())
	defer cancel()
	return d.exporter.Shutdown(shutdownCtx)
}

// run is the flush loop. It is the only goroutine that touches batches or
// calls the exporter, so batching needs no locking.
func (d *Dispatcher) run() {
	defer close(d.done)

	ticker := time.NewTicker(d.cfg.flushInterval())
	defer ticker.Stop()

	batch := make([]tracer.SpanData, 0, d.cfg.batchSize())

	for {
		select {
		case span := <-d.queue:
			batch = append(batch, span)
			if len(batch) >= d.cfg.batchSize() {
				d.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				d.flush(batch)
				batch = batch[:0]
			}
		case <-d.stop:
			d.drainAndFlush(batch)
			return
		}
	}
}

// drainAndFlush empties whatever is already queued and performs the final,
// single-attempt flush bounded by the shutdown grace period. Retrying during
// shutdown would hold the process hostage to a dead backend.
func (d *Dispatcher) drainAndFlush(batch []tracer.SpanData) {
	for {
		select {
		case span := <-d.queue:
			batch = append(batch, span)
			if len(batch) >= d.cfg.batchSize() {
				d.flushOnce(batch)
				batch = batch[:0]
			}
		default:
			if len(batch) > 0 {
				d.flushOnce(batch)
			}
			return
		}
	}
}

// flush ships one batch with bounded exponential retry. On final failure
// the batch is dropped and counted.
func (d *Dispatcher) flush(batch []tracer.SpanData) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.cfg.retryInitial()
	bo.MaxInterval = d.cfg.retryMax()
	bo.MaxElapsedTime = 0 // bounded by the attempt count instead

	attempt := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.exportTimeout())
		defer cancel()
		return d.exporter.Export(ctx, batch)
	}

	err := backoff.Retry(attempt, backoff.WithMaxRetries(bo, d.cfg.maxRetries()))
	d.record(batch, err)
}

// flushOnce ships one batch with a single attempt, used on shutdown.
func (d *Dispatcher) flushOnce(batch []tracer.SpanData) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.shutdownGrace())
	defer cancel()
	d.record(batch, d.exporter.Export(ctx, batch))
}

func (d *Dispatcher) record(batch []tracer.SpanData, err error) {
	if err != nil {
		d.droppedBatches.Add(1)
		d.droppedSpans.Add(uint64(len(batch)))
		d.log.Warn("span batch dropped after retries",
			zap.Int("spans", len(batch)),
			zap.Error(err),
		)
		return
	}
	d.exportedBatches.Add(1)
	d.exportedSpans.Add(uint64(len(batch)))
}
