package export

import "time"

// Default dispatch policy. All of these are configuration, not hard-coded
// behavior: tune them per deployment through Config.
const (
	DefaultBatchSize     = 128
	DefaultFlushInterval = 1 * time.Second
	DefaultQueueSize     = 2048
	DefaultMaxRetries    = 5
	DefaultRetryInitial  = 100 * time.Millisecond
	DefaultRetryMax      = 5 * time.Second
	DefaultExportTimeout = 10 * time.Second
	DefaultShutdownGrace = 5 * time.Second
)

// Config defines the configuration for the span export dispatcher and the
// exporter it feeds.
type Config struct {
	// Endpoint is the address of the OTLP/gRPC collector that receives
	// span batches, e.g. "tempo:4317" or "localhost:4317".
	//
	// When empty, no network exporter is created: finished spans are
	// written as JSON lines to standard output instead, which is useful
	// in development and in tests.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "endpoint" key
	//   - Environment variable EXPORT_ENDPOINT
	Endpoint string `yaml:"endpoint" envconfig:"EXPORT_ENDPOINT"`

	// Insecure disables transport security on the collector connection.
	// Typical for collectors reachable only inside a private network.
	//
	// Environment variable: EXPORT_INSECURE
	Insecure bool `yaml:"insecure" envconfig:"EXPORT_INSECURE"`

	// BatchSize is the number of finished spans that triggers a flush
	// before the flush interval elapses. Default: 128.
	BatchSize int `yaml:"batch_size" envconfig:"EXPORT_BATCH_SIZE"`

	// FlushInterval is the longest a finished span waits in the current
	// batch before being flushed, regardless of batch fill. Default: 1s.
	FlushInterval time.Duration `yaml:"flush_interval" envconfig:"EXPORT_FLUSH_INTERVAL"`

	// QueueSize bounds the in-memory span queue between the request path
	// and the flush goroutine. When the queue is full, new spans are
	// dropped and counted rather than blocking the request. Default: 2048.
	QueueSize int `yaml:"queue_size" envconfig:"EXPORT_QUEUE_SIZE"`

	// MaxRetries is how many times a failed batch is retried (with
	// exponential backoff) before it is dropped and counted. Default: 5.
	MaxRetries int `yaml:"max_retries" envconfig:"EXPORT_MAX_RETRIES"`

	// RetryInitial is the first backoff delay after a failed export
	// attempt. Default: 100ms.
	RetryInitial time.Duration `yaml:"retry_initial" envconfig:"EXPORT_RETRY_INITIAL"`

	// RetryMax caps the backoff delay between attempts. Default: 5s.
	RetryMax time.Duration `yaml:"retry_max" envconfig:"EXPORT_RETRY_MAX"`

	// ExportTimeout bounds a single export attempt. Default: 10s.
	ExportTimeout time.Duration `yaml:"export_timeout" envconfig:"EXPORT_TIMEOUT"`

	// ShutdownGrace bounds the best-effort final flush performed when the
	// dispatcher shuts down; whatever cannot be flushed within it is
	// discarded. Default: 5s.
	ShutdownGrace time.Duration `yaml:"shutdown_grace" envconfig:"EXPORT_SHUTDOWN_GRACE"`
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}

func (c Config) flushInterval() time.Duration {
	if c.FlushInterval <= 0 {
		return DefaultFlushInterval
	}
	return c.FlushInterval
}

func (c Config) queueSize() int {
	if c.QueueSize <= 0 {
		return DefaultQueueSize
	}
	return c.QueueSize
}

func (c Config) maxRetries() uint64 {
	if c.MaxRetries < 0 {
		return 0
	}
	if c.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	return uint64(c.MaxRetries)
}

func (c Config) retryInitial() time.Duration {
	if c.RetryInitial <= 0 {
		return DefaultRetryInitial
	}
	return c.RetryInitial
}

func (c Config) retryMax() time.Duration {
	if c.RetryMax <= 0 {
		return DefaultRetryMax
	}
	return c.RetryMax
}

func (c Config) exportTimeout() time.Duration {
	if c.ExportTimeout <= 0 {
		return DefaultExportTimeout
	}
	return c.ExportTimeout
}

func (c Config) shutdownGrace() time.Duration {
	if c.ShutdownGrace <= 0 {
		return DefaultShutdownGrace
	}
	return c.ShutdownGrace
}
