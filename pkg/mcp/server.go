// Package mcp serves weburl's URL parsing, resolution and IDNA conversion
// as Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

const (
	serverName    = "weburl"
	mcpSpanPrefix = "mcp."
)

// ServerDeps holds optional dependencies. Zero values disable the feature.
type ServerDeps struct {
	Logger  *slog.Logger
	Metrics *observability.REDMetrics
	Tracer  trace.Tracer
	Version string

	// ParserOptions apply to every weburl_parse and weburl_resolve call.
	ParserOptions []weburl.Option
}

// Server wraps the MCP SDK server with the weburl tools.
type Server struct {
	inner   *mcpsdk.Server
	mu      sync.RWMutex
	tools   []string
	metrics *observability.REDMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
	opts    []weburl.Option
}

// NewServer creates a server with every tool registered.
func NewServer(deps ServerDeps) *Server {
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	opts := &mcpsdk.ServerOptions{}
	if deps.Logger != nil {
		opts.Logger = deps.Logger
	}

	srv := &Server{
		inner:   mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: version}, opts),
		metrics: deps.Metrics,
		tracer:  deps.Tracer,
		logger:  deps.Logger,
		opts:    deps.ParserOptions,
	}

	addTool[ParseInput](srv, ToolNameParse, parseToolDescription, srv.handleParse)
	addTool[ResolveInput](srv, ToolNameResolve, resolveToolDescription, srv.handleResolve)
	addTool[IDNAInput](srv, ToolNameIDNA, idnaToolDescription, handleIDNA)

	return srv
}

// ListToolNames returns the sorted names of the registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := slices.Clone(s.tools)
	slices.Sort(names)

	return names
}

// Run serves on stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport serves on transport until ctx is cancelled or the
// connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	if err := s.inner.Run(ctx, transport); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

type toolHandler[In any] func(context.Context, *mcpsdk.CallToolRequest, In) (*mcpsdk.CallToolResult, ToolOutput, error)

func addTool[In any](s *Server, name, description string, h toolHandler[In]) {
	wrapped := withMetrics(s.metrics, name, withTracing(s.tracer, name, h))
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{Name: name, Description: description}, mcpsdk.ToolHandlerFor[In, ToolOutput](wrapped))

	s.mu.Lock()
	s.tools = append(s.tools, name)
	s.mu.Unlock()
}

// withTracing opens a span per call and appends "trace_id=..." to the
// content of sampled calls.
func withTracing[In any](tracer trace.Tracer, name string, h toolHandler[In]) toolHandler[In] {
	if tracer == nil {
		return h
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, in In) (*mcpsdk.CallToolResult, ToolOutput, error) {
		ctx, span := tracer.Start(ctx, mcpSpanPrefix+name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", name)),
		)
		defer span.End()

		result, out, err := h(ctx, req, in)

		if err != nil || (result != nil && result.IsError) {
			span.SetStatus(codes.Error, "tool error")
		}

		if sc := span.SpanContext(); sc.IsSampled() && result != nil {
			result.Content = append(result.Content, &mcpsdk.TextContent{Text: "trace_id=" + sc.TraceID().String()})
		}

		return result, out, err
	}
}

func withMetrics[In any](metrics *observability.REDMetrics, name string, h toolHandler[In]) toolHandler[In] {
	if metrics == nil {
		return h
	}

	op := mcpSpanPrefix + name

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, in In) (*mcpsdk.CallToolResult, ToolOutput, error) {
		start := time.Now()

		defer metrics.TrackInflight(ctx, op)()

		result, out, err := h(ctx, req, in)

		status := observability.StatusOK
		if err != nil || (result != nil && result.IsError) {
			status = observability.StatusError
		}

		metrics.RecordRequest(ctx, op, status, time.Since(start))

		return result, out, err
	}
}
