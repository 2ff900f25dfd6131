// Package config loads weburl settings from a YAML file, WEBURL_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// Validation errors.
var (
	ErrInvalidPort        = errors.New("server.port must be between 1 and 65535")
	ErrInvalidTimeout     = errors.New("server timeouts must be positive")
	ErrInvalidBodyLimit   = errors.New("server.max_body_bytes must be positive")
	ErrInvalidCacheSize   = errors.New("cache.max_entries must be positive when the cache is enabled")
	ErrInvalidLogFormat   = errors.New("logging.format must be text or json")
	ErrInvalidSampleRatio = errors.New("telemetry.sample_ratio must be between 0 and 1")
)

const maxPort = 65535

// Config is the top-level configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Parser    ParserConfig    `mapstructure:"parser"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CacheConfig configures the parse result cache of the HTTP API.
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParserConfig holds defaults for every parse.
type ParserConfig struct {
	// Encoding is a WHATWG encoding label for query strings. Empty is UTF-8.
	Encoding           string `mapstructure:"encoding"`
	EscapeStrayPercent bool   `mapstructure:"escape_stray_percent"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	Insecure     bool    `mapstructure:"insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	Environment  string  `mapstructure:"environment"`
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}

	for _, d := range []time.Duration{c.Server.ReadTimeout, c.Server.WriteTimeout, c.Server.IdleTimeout, c.Server.ShutdownTimeout} {
		if d <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTimeout, d)
		}
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBodyLimit, c.Server.MaxBodyBytes)
	}

	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, c.Cache.MaxEntries)
	}

	if _, err := observability.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if _, err := weburl.LookupEncoding(c.Parser.Encoding); err != nil {
		return fmt.Errorf("parser.encoding: %w", err)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, c.Telemetry.SampleRatio)
	}

	return nil
}

// ParserOptions returns the weburl options the parser section selects.
func (c *Config) ParserOptions() ([]weburl.Option, error) {
	var opts []weburl.Option

	enc, err := weburl.LookupEncoding(c.Parser.Encoding)
	if err != nil {
		return nil, fmt.Errorf("parser.encoding: %w", err)
	}

	if enc != nil {
		opts = append(opts, weburl.WithEncoding(enc))
	}

	if c.Parser.EscapeStrayPercent {
		opts = append(opts, weburl.WithEscapeStrayPercent())
	}

	return opts, nil
}

// Observability maps the logging and telemetry sections onto an
// observability.Config for the given mode.
func (c *Config) Observability(mode observability.AppMode, version string) observability.Config {
	obs := observability.DefaultConfig()
	obs.Mode = mode
	obs.ServiceVersion = version
	obs.Environment = c.Telemetry.Environment
	obs.OTLPEndpoint = c.Telemetry.OTLPEndpoint
	obs.OTLPHeaders = observability.ParseOTLPHeaders(c.Telemetry.OTLPHeaders)
	obs.OTLPInsecure = c.Telemetry.Insecure
	obs.SampleRatio = c.Telemetry.SampleRatio
	obs.LogJSON = c.Logging.Format == "json"

	if level, err := observability.ParseLevel(c.Logging.Level); err == nil {
		obs.LogLevel = level
	}

	if c.Server.ShutdownTimeout > 0 {
		obs.ShutdownTimeoutSec = int(c.Server.ShutdownTimeout / time.Second)
	}

	return obs
}
