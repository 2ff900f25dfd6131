// Package observability wires OpenTelemetry tracing and metrics and the
// structured slog logger shared by the weburl CLI, HTTP server and MCP
// server.
package observability

import (
	"io"
	"log/slog"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// AppMode identifies how the binary was launched.
type AppMode string

// Application modes.
const (
	ModeCLI   AppMode = "cli"
	ModeMCP   AppMode = "mcp"
	ModeServe AppMode = "serve"
)

const (
	defaultServiceName        = "weburl"
	defaultShutdownTimeoutSec = 5
)

// Config holds all observability configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Mode           AppMode

	// OTLPEndpoint is the OTLP gRPC collector address. Empty disables
	// export.
	OTLPEndpoint string
	OTLPHeaders  map[string]string
	OTLPInsecure bool

	// SampleRatio is the parent-based trace sampling ratio. Zero samples
	// every root span.
	SampleRatio float64

	// MetricReaders are attached to the meter provider in addition to the
	// OTLP exporter, e.g. the Prometheus reader of the HTTP server.
	MetricReaders []sdkmetric.Reader

	LogLevel  slog.Level
	LogJSON   bool
	LogWriter io.Writer

	ShutdownTimeoutSec int
}

// DefaultConfig returns the zero-config startup settings.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		Mode:               ModeCLI,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
