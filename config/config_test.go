package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrlab/weft/logger"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: debug
  service_name: checkout
tracer:
  service_name: checkout
  sample_ratio: 0.25
metrics:
  service_name: checkout
  enable_runtime_collectors: true
export:
  endpoint: collector:4317
  batch_size: 64
  flush_interval: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logger.Debug, cfg.Logger.Level)
	assert.Equal(t, "checkout", cfg.Logger.ServiceName)
	assert.Equal(t, 0.25, cfg.Tracer.SampleRatio)
	assert.True(t, cfg.Metrics.EnableRuntimeCollectors)
	assert.Equal(t, "collector:4317", cfg.Export.Endpoint)
	assert.Equal(t, 64, cfg.Export.BatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Export.FlushInterval)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: info
export:
  endpoint: collector:4317
`)

	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("EXPORT_ENDPOINT", "other:4317")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logger.Error, cfg.Logger.Level)
	assert.Equal(t, "other:4317", cfg.Export.Endpoint)
}

func TestLoad_EmptyPathUsesEnvironmentOnly(t *testing.T) {
	t.Setenv("TRACER_SERVICE_NAME", "env-service")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-service", cfg.Tracer.ServiceName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "logger: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
}
