package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/weburl/pkg/mcp"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func connect(t *testing.T, srv *mcp.Server) *mcpsdk.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	done := make(chan error, 1)

	go func() { done <- srv.RunWithTransport(ctx, serverTransport) }()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0.0"}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func callTool(t *testing.T, session *mcpsdk.ClientSession, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	return result
}

func firstText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestNewServer_ToolsRegistered(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	assert.Equal(t, []string{"weburl_idna", "weburl_parse", "weburl_resolve"}, srv.ListToolNames())
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 3)

	for _, tool := range tools.Tools {
		assert.NotNil(t, tool.InputSchema, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
}

func TestServer_Parse(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "HTTP://EXAMPLE.com:80/a b?q#f"})
	require.False(t, result.IsError, firstText(t, result))

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))

	assert.Equal(t, "http://example.com/a%20b?q#f", out["href"])
	assert.Equal(t, "http://example.com", out["origin"])
	assert.Equal(t, "example.com", out["host"])
	assert.Equal(t, "domain", out["host_kind"])
	assert.Equal(t, "?q", out["search"])

	result = callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "g?y", "base": "http://a/b/c/d"})
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))
	assert.Equal(t, "http://a/b/c/g?y", out["href"])

	result = callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "http:\\\\x\\y"})
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))
	assert.Contains(t, firstText(t, result), "invalid-reverse-solidus")

	result = callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "http://[::g]/"})
	assert.True(t, result.IsError)
	assert.Contains(t, firstText(t, result), "IPv6")

	result = callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "x", "base": "not a url"})
	assert.True(t, result.IsError)
	assert.Contains(t, firstText(t, result), "invalid base URL")

	result = callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "http://x/?é", "encoding": "latin1"})
	require.False(t, result.IsError)
	assert.Contains(t, firstText(t, result), "?%E9")
}

func TestServer_Resolve(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameResolve, map[string]any{
		"base": "http://a/b/c/d;p?q",
		"refs": []string{"../g", "//other/x", "http://[::g]/"},
	})
	require.False(t, result.IsError)

	var out []mcp.Resolved
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))
	require.Len(t, out, 3)

	assert.Equal(t, "http://a/b/g", out[0].Href)
	assert.Equal(t, "http://other/x", out[1].Href)
	assert.Empty(t, out[2].Href)
	assert.NotEmpty(t, out[2].Error)

	result = callTool(t, session, mcp.ToolNameResolve, map[string]any{"base": "http://a/", "refs": []string{}})
	assert.True(t, result.IsError)
	assert.Contains(t, firstText(t, result), "refs")
}

func TestServer_IDNA(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	tests := []struct {
		args map[string]any
		want string
	}{
		{map[string]any{"domain": "Bücher.de"}, "xn--bcher-kva.de"},
		{map[string]any{"domain": "xn--bcher-kva.de", "direction": "to_unicode"}, "bücher.de"},
		{map[string]any{"domain": "faß.de"}, "xn--fa-hia.de"},
		{map[string]any{"domain": "faß.de", "transitional": true}, "fass.de"},
	}

	for _, tt := range tests {
		result := callTool(t, session, mcp.ToolNameIDNA, tt.args)
		require.False(t, result.IsError, firstText(t, result))

		var out mcp.IDNAOutput
		require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))
		assert.Equal(t, tt.want, out.Output, tt.args)
	}

	result := callTool(t, session, mcp.ToolNameIDNA, map[string]any{"domain": "x", "direction": "sideways"})
	assert.True(t, result.IsError)

	result = callTool(t, session, mcp.ToolNameIDNA, map[string]any{"domain": "a\u200db"})
	assert.True(t, result.IsError)
}

func TestServer_TracingAndMetrics(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	reader := sdkmetric.NewManualReader()
	red, err := observability.NewREDMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test"))
	require.NoError(t, err)

	session := connect(t, mcp.NewServer(mcp.ServerDeps{Tracer: tp.Tracer("test"), Metrics: red}))

	result := callTool(t, session, mcp.ToolNameParse, map[string]any{"url": "https://example.com/"})
	require.False(t, result.IsError)

	last, ok := result.Content[len(result.Content)-1].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(last.Text, "trace_id="))

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	assert.Equal(t, "mcp.weburl_parse", spans[len(spans)-1].Name)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}

	assert.True(t, names["weburl.requests.total"])
	assert.True(t, names["weburl.parse.total"])
}
