package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/weburl/pkg/idna"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// Tool names.
const (
	ToolNameParse   = "weburl_parse"
	ToolNameResolve = "weburl_resolve"
	ToolNameIDNA    = "weburl_idna"
)

// Input limits.
const (
	MaxInputBytes = 64 << 10
	MaxRefs       = 256
)

// Directions of weburl_idna.
const (
	DirectionToASCII   = "to_ascii"
	DirectionToUnicode = "to_unicode"
)

// Tool input errors.
var (
	ErrInputTooLarge    = errors.New("input exceeds maximum size")
	ErrEmptyBase        = errors.New("base parameter is required and must not be empty")
	ErrNoRefs           = errors.New("refs parameter must list at least one reference")
	ErrTooManyRefs      = errors.New("too many refs")
	ErrEmptyDomain      = errors.New("domain parameter is required and must not be empty")
	ErrUnknownDirection = errors.New("direction must be to_ascii or to_unicode")
)

// ParseInput is the input of weburl_parse.
type ParseInput struct {
	URL      string `json:"url"                jsonschema:"the URL string to parse"`
	Base     string `json:"base,omitempty"     jsonschema:"optional base URL to resolve a relative url against"`
	Encoding string `json:"encoding,omitempty" jsonschema:"optional WHATWG encoding label for the query, default utf-8"`
}

// ResolveInput is the input of weburl_resolve.
type ResolveInput struct {
	Base string   `json:"base" jsonschema:"absolute base URL"`
	Refs []string `json:"refs" jsonschema:"references to resolve against base"`
}

// IDNAInput is the input of weburl_idna.
type IDNAInput struct {
	Domain       string `json:"domain"                 jsonschema:"domain name to convert"`
	Direction    string `json:"direction,omitempty"    jsonschema:"to_ascii (default) or to_unicode"`
	Transitional bool   `json:"transitional,omitempty" jsonschema:"map deviation characters such as ß the IDNA2003 way"`
}

// ToolOutput wraps structured tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// ParseOutput is the result of weburl_parse.
type ParseOutput struct {
	weburl.Components

	HostKind string                   `json:"host_kind"`
	Errors   []weburl.ValidationError `json:"validation_errors,omitempty"`
}

// Resolved is one entry of the weburl_resolve result. Exactly one of Href
// and Error is set.
type Resolved struct {
	Ref   string `json:"ref"`
	Href  string `json:"href,omitempty"`
	Error string `json:"error,omitempty"`
}

// IDNAOutput is the result of weburl_idna.
type IDNAOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func (s *Server) handleParse(ctx context.Context, _ *mcpsdk.CallToolRequest, in ParseInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if len(in.URL) > MaxInputBytes || len(in.Base) > MaxInputBytes {
		return errorResult(fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, MaxInputBytes))
	}

	opts := append([]weburl.Option(nil), s.opts...)

	if in.Base != "" {
		base, err := weburl.Parse(in.Base)
		if err != nil {
			s.recordParse(ctx, observability.OutcomeFailure)

			return errorResult(fmt.Errorf("%w: %w", weburl.ErrInvalidBase, err))
		}

		opts = append(opts, weburl.WithBase(base))
	}

	if in.Encoding != "" {
		enc, err := weburl.LookupEncoding(in.Encoding)
		if err != nil {
			return errorResult(err)
		}

		opts = append(opts, weburl.WithEncoding(enc))
	}

	if s.logger != nil {
		opts = append(opts, weburl.WithLogger(s.logger))
	}

	res, err := weburl.NewParser(opts...).ParseContext(ctx, in.URL)
	if err != nil {
		s.recordParse(ctx, observability.OutcomeFailure)

		return errorResult(err)
	}

	if res.HasErrors() {
		s.recordParse(ctx, observability.OutcomeInvalid)
	} else {
		s.recordParse(ctx, observability.OutcomeValid)
	}

	return jsonResult(ParseOutput{
		Components: res.URL.Components(),
		HostKind:   res.URL.Host.Kind().String(),
		Errors:     res.Errors,
	})
}

func (s *Server) handleResolve(ctx context.Context, _ *mcpsdk.CallToolRequest, in ResolveInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	switch {
	case in.Base == "":
		return errorResult(ErrEmptyBase)
	case len(in.Refs) == 0:
		return errorResult(ErrNoRefs)
	case len(in.Refs) > MaxRefs:
		return errorResult(fmt.Errorf("%w: %d (max %d)", ErrTooManyRefs, len(in.Refs), MaxRefs))
	}

	base, err := weburl.Parse(in.Base)
	if err != nil {
		return errorResult(fmt.Errorf("%w: %w", weburl.ErrInvalidBase, err))
	}

	p := weburl.NewParser(append([]weburl.Option{weburl.WithBase(base)}, s.opts...)...)
	out := make([]Resolved, 0, len(in.Refs))

	for _, ref := range in.Refs {
		if len(ref) > MaxInputBytes {
			out = append(out, Resolved{Ref: ref, Error: ErrInputTooLarge.Error()})

			continue
		}

		res, err := p.ParseContext(ctx, ref)
		if err != nil {
			s.recordParse(ctx, observability.OutcomeFailure)
			out = append(out, Resolved{Ref: ref, Error: err.Error()})

			continue
		}

		s.recordParse(ctx, observability.OutcomeValid)
		out = append(out, Resolved{Ref: ref, Href: res.URL.Href()})
	}

	return jsonResult(out)
}

func handleIDNA(_ context.Context, _ *mcpsdk.CallToolRequest, in IDNAInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if in.Domain == "" {
		return errorResult(ErrEmptyDomain)
	}

	if len(in.Domain) > MaxInputBytes {
		return errorResult(fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, MaxInputBytes))
	}

	profile := idna.Lookup
	if in.Transitional {
		profile = idna.New(idna.Transitional(true), idna.CheckBidi(true), idna.CheckJoiners(true))
	}

	var (
		out string
		err error
	)

	switch in.Direction {
	case "", DirectionToASCII:
		out, err = profile.ToASCII(in.Domain)
	case DirectionToUnicode:
		out, err = profile.ToUnicode(in.Domain)
	default:
		return errorResult(fmt.Errorf("%w: %q", ErrUnknownDirection, in.Direction))
	}

	if err != nil {
		return errorResult(err)
	}

	return jsonResult(IDNAOutput{Input: in.Domain, Output: out})
}

func (s *Server) recordParse(ctx context.Context, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordParse(ctx, outcome)
	}
}

func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
		IsError: true,
	}, ToolOutput{}, nil
}

func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, ToolOutput{Data: value}, nil
}

const (
	parseToolDescription = "Parse a URL the way browsers do (WHATWG URL Standard). " +
		"Returns href, origin and every URL API component plus validation errors."

	resolveToolDescription = "Resolve relative references against an absolute base URL. " +
		"Returns the resulting href or the parse failure for each reference."

	idnaToolDescription = "Convert a domain name between Unicode and its ASCII (Punycode) form " +
		"using UTS #46 processing."
)
