package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hide.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/data/user_de", cfg.AppDataRoot)
	assert.Zero(t, cfg.MonitorInterval)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"store_driver": "bolt",
		"store_path": "/tmp/hide.bolt",
		"work_root": "/dev/xyz",
		"sdk_int": 30,
		"monitor_interval": "250ms"
	}`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "/tmp/hide.bolt", cfg.StorePath)
	assert.Equal(t, "/dev/xyz", cfg.WorkRoot)
	assert.Equal(t, 30, cfg.SDKInt)
	assert.Equal(t, 250*time.Millisecond, cfg.MonitorInterval)
	assert.Equal(t, "/proc", cfg.ProcRoot)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(writeConfig(t, `{"monitor_interval": "soon"}`), nil)
	assert.ErrorContains(t, err, "monitor_interval")

	_, err = Load(writeConfig(t, `{"sdk_int": -1}`), nil)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envStorePath, "/env/hide.db")
	t.Setenv(envSDKInt, "34")
	t.Setenv(envMonitorInterval, "2s")
	t.Setenv(envDebug, "true")

	cfg, err := Load(writeConfig(t, `{"store_path": "/file/hide.db", "sdk_int": 30}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "/env/hide.db", cfg.StorePath)
	assert.Equal(t, 34, cfg.SDKInt)
	assert.Equal(t, 2*time.Second, cfg.MonitorInterval)
	assert.True(t, cfg.Debug)
}

func TestInvalidEnvIsLoggedAndIgnored(t *testing.T) {
	t.Setenv(envSDKInt, "tiramisu")
	core, logs := observer.New(zap.WarnLevel)

	cfg, err := Load("", zap.New(core))
	require.NoError(t, err)
	assert.Zero(t, cfg.SDKInt)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, envSDKInt, logs.All()[0].ContextMap()["env"])
}
