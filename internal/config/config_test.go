package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/internal/config"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weburl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultServerHost, cfg.Server.Host)
	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultServerReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(config.DefaultServerMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, config.DefaultCacheMaxEntries, cfg.Cache.MaxEntries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Parser.Encoding)
	assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())

	assert.Equal(t, cfg, config.Default())
}

func TestLoad_FileOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, `
server:
  port: 9090
  read_timeout: 2s
cache:
  max_entries: 50
logging:
  level: debug
  format: json
parser:
  encoding: windows-1252
  escape_stray_percent: true
telemetry:
  otlp_endpoint: collector:4317
  otlp_headers: "api-key=secret"
  sample_ratio: 0.25
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 50, cfg.Cache.MaxEntries)

	opts, err := cfg.ParserOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	res, err := weburl.NewParser(opts...).Parse("http://x/?é%")
	require.NoError(t, err)
	assert.Equal(t, "http://x/?%E9%25", res.URL.Href())

	obs := cfg.Observability(observability.ModeServe, "1.0.0")
	assert.Equal(t, observability.ModeServe, obs.Mode)
	assert.Equal(t, "1.0.0", obs.ServiceVersion)
	assert.Equal(t, "collector:4317", obs.OTLPEndpoint)
	assert.Equal(t, map[string]string{"api-key": "secret"}, obs.OTLPHeaders)
	assert.Equal(t, slog.LevelDebug, obs.LogLevel)
	assert.True(t, obs.LogJSON)
	assert.InDelta(t, 0.25, obs.SampleRatio, 0)
	assert.Equal(t, 5, obs.ShutdownTimeoutSec)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEBURL_SERVER_PORT", "7070")
	t.Setenv("WEBURL_LOGGING_FORMAT", "json")

	cfg, err := config.Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"port", "server:\n  port: 70000\n", config.ErrInvalidPort},
		{"timeout", "server:\n  idle_timeout: 0s\n", config.ErrInvalidTimeout},
		{"body", "server:\n  max_body_bytes: 0\n", config.ErrInvalidBodyLimit},
		{"cache", "cache:\n  max_entries: 0\n", config.ErrInvalidCacheSize},
		{"level", "logging:\n  level: loud\n", observability.ErrInvalidLogLevel},
		{"format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
		{"encoding", "parser:\n  encoding: klingon\n", weburl.ErrUnknownEncoding},
		{"ratio", "telemetry:\n  sample_ratio: 2\n", config.ErrInvalidSampleRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_DisabledCacheSkipsSizeCheck(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, "cache:\n  enabled: false\n  max_entries: 0\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Cache.Enabled)
}
