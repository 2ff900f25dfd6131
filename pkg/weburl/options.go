package weburl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned by LookupEncoding for an unknown label.
var ErrUnknownEncoding = errors.New("unknown encoding label")

// Option configures a Parser.
type Option func(*config)

type config struct {
	base               *URL
	encoding           encoding.Encoding
	logger             *slog.Logger
	escapeStrayPercent bool
}

// WithBase resolves relative input against base.
func WithBase(base *URL) Option {
	return func(c *config) { c.base = base }
}

// WithEncoding sets the encoding the query of special non-WebSocket URLs is
// encoded with before percent-encoding. nil selects UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.encoding = enc }
}

// WithLogger logs failures and validation errors at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithEscapeStrayPercent escapes a '%' that does not start a %XX sequence as
// "%25" instead of keeping it literally.
func WithEscapeStrayPercent() Option {
	return func(c *config) { c.escapeStrayPercent = true }
}

// LookupEncoding returns the output encoding for a WHATWG encoding label.
// UTF-8 and the encodings that cannot be used for output (replacement,
// UTF-16) yield nil, which stands for UTF-8.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	switch name {
	case "utf-8", "utf-16be", "utf-16le", "replacement":
		return nil, nil
	default:
		return enc, nil
	}
}
