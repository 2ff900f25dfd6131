package config

import "time"

// Defaults.
const (
	DefaultServerHost            = "127.0.0.1"
	DefaultServerPort            = 8080
	DefaultServerReadTimeout     = 10 * time.Second
	DefaultServerWriteTimeout    = 10 * time.Second
	DefaultServerIdleTimeout     = 60 * time.Second
	DefaultServerShutdownTimeout = 5 * time.Second
	DefaultServerMaxBodyBytes    = 1 << 20

	DefaultCacheEnabled    = true
	DefaultCacheMaxEntries = 10000

	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"

	DefaultTelemetrySampleRatio = 1.0
)
