package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "2.0.0" },
		"adapter": {
			"http_address": "http://api:8080/v1",
			"ws_address": "ws://api:8080/v1/ws",
			"request_timeout": "10s"
		},
		"viewer": { "bus_id": "bus-7", "reset_timeout": "8s" },
		"server": {
			"http_address": "localhost:8090",
			"request_timeout": "30s",
			"heartbeat_interval": "15s",
			"session_rate": 2,
			"session_burst": 4
		},
		"workers": { "balance_refresh_interval": 60000000000 },
		"log": { "level": "info", "file": "kiosk.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "http://api:8080/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://api:8080/v1/ws", cfg.Adapter.WSAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "bus-7", cfg.Viewer.BusID)
	assert.Equal(t, 8*time.Second, cfg.Viewer.ResetTimeout)
	assert.Equal(t, "localhost:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.HeartbeatInterval)
	assert.InDelta(t, 2.0, cfg.Server.SessionRate, 1e-9)
	assert.Equal(t, 4, cfg.Server.SessionBurst)
	assert.Equal(t, time.Minute, cfg.Workers.BalanceRefreshInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "kiosk.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"viewer": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"viewer": {"reset_timeout": "eight"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(8 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"8s"`, string(b))
}

func TestDuration_UnmarshalJSON_Null(t *testing.T) {
	d := Duration(time.Second)
	require.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.Equal(t, Duration(time.Second), d)
}
