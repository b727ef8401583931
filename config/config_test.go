package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/schedulers"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8081
log_level: debug
scheduler:
  round_robin:
    time_quantum: 3
  multilevel_queue:
    high_quantum: 1
    low_quantum: 6
    priority_threshold: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, schedulers.Options{TimeQuantum: 3, HighQuantum: 1, LowQuantum: 6, PriorityThreshold: 4}, cfg.Options())
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, schedulers.DefaultOptions(), cfg.Options())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	path := writeConfig(t, "port: 9000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
