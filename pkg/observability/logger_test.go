package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestTracingHandler_InjectsTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewTracingHandler(inner, "weburl", "test", observability.ModeServe))

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "parsed")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", record["trace_id"])
	assert.Equal(t, "0102030405060708", record["span_id"])
	assert.Equal(t, "weburl", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "serve", record["mode"])
}

func TestTracingHandler_NoSpan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(observability.NewTracingHandler(inner, "weburl", "", observability.ModeMCP))

	logger.WithGroup("req").Info("no span", "url", "http://x/")

	record := decodeRecord(t, &buf)
	assert.NotContains(t, record, "trace_id")
	assert.NotContains(t, record, "env")
	assert.Equal(t, "weburl", record["service"])
	assert.Equal(t, map[string]any{"url": "http://x/"}, record["req"])
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := observability.DefaultConfig()
	cfg.LogJSON = true
	cfg.LogWriter = &buf
	cfg.LogLevel = slog.LevelWarn

	logger := observability.NewLogger(cfg)
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "cli", record["mode"])

	buf.Reset()

	cfg.LogJSON = false
	observability.NewLogger(cfg).Error("text")
	assert.Contains(t, buf.String(), "msg=text")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := observability.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := observability.ParseLevel("loud")
	require.ErrorIs(t, err, observability.ErrInvalidLogLevel)
}
