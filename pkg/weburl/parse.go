package weburl

import (
	"context"
	"fmt"
	"log/slog"
)

// Result is a successful parse together with its validation errors.
type Result struct {
	URL    *URL
	Errors []ValidationError
}

// HasErrors reports whether any validation error was raised.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// Parser parses URLs with a fixed configuration. It is safe for concurrent
// use.
type Parser struct {
	cfg config
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(&p.cfg)
	}

	return p
}

// Parse parses input, resolving it against the configured base.
func (p *Parser) Parse(input string) (*Result, error) {
	return p.ParseContext(context.Background(), input)
}

// ParseContext is Parse with a context for the debug log records.
func (p *Parser) ParseContext(ctx context.Context, input string) (*Result, error) {
	u, errs, err := basicParse(input, p.cfg.base, nil, stateNone, &p.cfg)

	if logger := p.cfg.logger; logger != nil && logger.Enabled(ctx, slog.LevelDebug) {
		switch {
		case err != nil:
			logger.DebugContext(ctx, "url parse failed", "input", input, "error", err)
		case len(errs) > 0:
			logger.DebugContext(ctx, "url validation errors", "input", input, "errors", errs)
		}
	}

	if err != nil {
		return nil, err
	}

	return &Result{URL: u, Errors: errs}, nil
}

// Parse parses an absolute URL.
func Parse(input string) (*URL, error) {
	return ParseRef(input, nil)
}

// ParseRef parses input relative to base, which may be nil.
func ParseRef(input string, base *URL) (*URL, error) {
	u, _, err := basicParse(input, base, nil, stateNone, nil)

	return u, err
}

// ParseWithBase parses base and then input relative to it. An unparsable
// base is a Failure wrapping ErrInvalidBase.
func ParseWithBase(input, base string) (*URL, error) {
	b, err := Parse(base)
	if err != nil {
		return nil, &Failure{Input: base, Err: fmt.Errorf("%w: %w", ErrInvalidBase, err)}
	}

	return ParseRef(input, b)
}

// CanParse reports whether input, resolved against base when it is not
// empty, parses.
func CanParse(input, base string) bool {
	var err error
	if base == "" {
		_, err = Parse(input)
	} else {
		_, err = ParseWithBase(input, base)
	}

	return err == nil
}
