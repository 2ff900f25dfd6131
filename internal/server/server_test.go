package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Sumatoshi-tech/weburl/internal/config"
	"github.com/Sumatoshi-tech/weburl/internal/server"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func newServer(t *testing.T, mutate func(*config.Config)) *server.Server {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}

	srv, err := server.New(server.Deps{Config: cfg})
	require.NoError(t, err)

	return srv
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, server.ParseResponse) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp server.ParseResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}

func TestParseGET(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	rec, resp := do(t, srv.Handler(), http.MethodGet, "/api/parse?url=HTTPS://EXAMPLE.com:443/a/../b%3Fc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.URL)
	assert.Equal(t, "https://example.com/b%3Fc", resp.URL.Href)
	assert.Equal(t, "https://example.com", resp.URL.Origin)
	assert.Empty(t, resp.URL.Port)
	assert.Equal(t, "domain", resp.HostKind)
	assert.Empty(t, resp.Error)
}

func TestParsePOSTWithBase(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	rec, resp := do(t, srv.Handler(), http.MethodPost, "/api/parse",
		`{"url":"../c?q#f","base":"http://h/a/b/"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.URL)
	assert.Equal(t, "http://h/a/c?q#f", resp.URL.Href)
	assert.Equal(t, "http://h/a/b/", resp.Base)
}

func TestParseValidationErrors(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	rec, resp := do(t, srv.Handler(), http.MethodPost, "/api/parse", `{"url":"https://exa\tmple.com/"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.URL)
	assert.Equal(t, "https://example.com/", resp.URL.Href)
	assert.NotEmpty(t, resp.ValidationErrors)
	assert.Contains(t, rec.Body.String(), `"tab-or-newline"`)
}

func TestParseFailures(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	tests := []struct {
		name, body, wantErr string
	}{
		{"bad host", `{"url":"http://exa mple.com/"}`, "weburl: parse"},
		{"relative without base", `{"url":"/path"}`, "relative URL without a base"},
		{"bad base", `{"url":"a","base":"not a url"}`, "invalid base URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, resp := do(t, srv.Handler(), http.MethodPost, "/api/parse", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Nil(t, resp.URL)
			assert.Contains(t, resp.Error, tt.wantErr)
		})
	}
}

func TestParseBadRequests(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(cfg *config.Config) { cfg.Server.MaxBodyBytes = 32 })

	tests := []struct {
		name, method, target, body string
		wantCode                   int
	}{
		{"missing url", http.MethodGet, "/api/parse", "", http.StatusBadRequest},
		{"empty url", http.MethodPost, "/api/parse", `{"url":""}`, http.StatusBadRequest},
		{"invalid json", http.MethodPost, "/api/parse", `{"url":`, http.StatusBadRequest},
		{"too large", http.MethodPost, "/api/parse", `{"url":"` + strings.Repeat("a", 64) + `"}`, http.StatusRequestEntityTooLarge},
		{"wrong method", http.MethodPut, "/api/parse", `{"url":"a"}`, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, _ := do(t, srv.Handler(), tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestParseCache(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	for range 3 {
		rec, _ := do(t, srv.Handler(), http.MethodGet, "/api/parse?url=http://a/", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/api/parse?url=http://a%20b/", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, srv.Handler(), http.MethodGet, "/api/parse?url=http://a%20b/", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	stats, ok := srv.CacheStats()
	require.True(t, ok)
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Entries)
}

func TestParseCacheDisabled(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(cfg *config.Config) { cfg.Cache.Enabled = false })

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/api/parse?url=http://a/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := srv.CacheStats()
	assert.False(t, ok)
}

func TestHealthAndReadiness(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, srv.Handler(), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), server.ErrNotReady.Error())

	srv.SetReady(true)

	rec, _ = do(t, srv.Handler(), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	reader, handler, err := observability.NewPrometheusReader()
	require.NoError(t, err)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { require.NoError(t, mp.Shutdown(context.Background())) })

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	srv, err := server.New(server.Deps{Config: config.Default(), Metrics: red, MetricsHandler: handler})
	require.NoError(t, err)

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/api/parse?url=http://a/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, srv.Handler(), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "weburl_parse_total")
	assert.Contains(t, body, `outcome="valid"`)
	assert.Contains(t, body, `result="miss"`)
	assert.Contains(t, body, "weburl_requests_total")
}

func TestMetricsEndpointAbsentWithoutHandler(t *testing.T) {
	t.Parallel()

	srv := newServer(t, nil)

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeGracefulShutdown(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(cfg *config.Config) { cfg.Server.ShutdownTimeout = 2 * time.Second })

	var lc net.ListenConfig

	ln, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx, ln) }()

	readyURL := "http://" + ln.Addr().String() + "/readyz"

	require.Eventually(t, func() bool {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, readyURL, http.NoBody)
		if reqErr != nil {
			return false
		}

		resp, getErr := http.DefaultClient.Do(req)
		if getErr != nil {
			return false
		}

		resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
