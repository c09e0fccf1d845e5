package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adjoint/internal/config"
	"github.com/born-ml/adjoint/internal/optim"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adjoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Minimizer.MaxIter)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
minimizer:
  max_iter: 250
  initial_step: 0.5
log:
  level: debug
  format: json
metrics:
  textfile: /tmp/adjoint.prom
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Minimizer.MaxIter)
	assert.Equal(t, 0.5, cfg.Minimizer.InitialStep)
	assert.Equal(t, 0.1, cfg.Minimizer.SufficientDecrease, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/adjoint.prom", cfg.Metrics.Textfile)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := config.Load(writeFile(t, "minimizer:\n  max_iters: 5\n"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero max_iter", "minimizer:\n  max_iter: 0\n"},
		{"shrink not below one", "minimizer:\n  shrink: 1.5\n"},
		{"grow below one", "minimizer:\n  grow: 0.9\n"},
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown format", "log:\n  format: xml\n"},
		{"negative workers", "parallel:\n  workers: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.yaml))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "minimizer:\n  max_iter: 250\nlog:\n  level: debug\n")
	t.Setenv("ADJOINT_MAX_ITER", "42")
	t.Setenv("ADJOINT_SHRINK", "0.25")
	t.Setenv("ADJOINT_LOG_LEVEL", "WARN")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Minimizer.MaxIter)
	assert.Equal(t, 0.25, cfg.Minimizer.Shrink)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("ADJOINT_TOLERANCE", "tiny")
	_, err := config.Load("")
	assert.ErrorContains(t, err, "ADJOINT_TOLERANCE")
}

func TestOptimConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Minimizer.MaxIter = 7
	metrics := optim.NewMetrics(nil)

	oc := cfg.OptimConfig(nil, metrics)
	assert.Equal(t, 7, oc.MaxIter)
	assert.Equal(t, 1.1, oc.Grow)
	assert.Same(t, metrics, oc.Metrics)
}

func TestParallelConfig(t *testing.T) {
	t.Setenv("ADJOINT_WORKERS", "3")
	cfg, err := config.Load("")
	require.NoError(t, err)

	pc := cfg.ParallelConfig()
	assert.Equal(t, 3, pc.NumWorkers)
	assert.True(t, pc.Enabled)

	cfg.Parallel.Workers = 1
	assert.False(t, cfg.ParallelConfig().Enabled)

	cfg.Parallel.Workers = 0
	assert.Positive(t, cfg.ParallelConfig().NumWorkers)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}
