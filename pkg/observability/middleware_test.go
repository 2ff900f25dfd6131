package observability_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func newTracer(t *testing.T) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	return tp.Tracer("test"), exporter
}

func TestHTTPMiddleware_CreatesSpan(t *testing.T) {
	t.Parallel()

	tracer, exporter := newTracer(t)
	red, reader := setupTestMeter(t)

	var sawSpan bool

	handler := http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		sawSpan = trace.SpanContextFromContext(hr.Context()).IsValid()

		_, _ = io.WriteString(rw, "{}")
	})

	rec := httptest.NewRecorder()
	observability.HTTPMiddleware(tracer, red, handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parse", http.NoBody))

	assert.True(t, sawSpan)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/parse", spans[0].Name)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(1), sumBy(t, findMetric(rm, "weburl.requests.total"), "op", "/api/parse"))
}

func TestHTTPMiddleware_ServerErrorStatus(t *testing.T) {
	t.Parallel()

	tracer, exporter := newTracer(t)
	red, reader := setupTestMeter(t)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	})

	observability.HTTPMiddleware(tracer, red, handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/parse", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(1), sumBy(t, findMetric(rm, "weburl.errors.total"), "op", "/api/parse"))
}

func TestHTTPMiddleware_ExtractsTraceParent(t *testing.T) {
	t.Parallel()

	tracer, exporter := newTracer(t)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("Traceparent", "00-0102030405060708090a0b0c0d0e0f10-0102030405060708-01")

	mw := observability.HTTPMiddleware(tracer, nil, handler)

	// The global propagator is only installed by Init; install W3C locally.
	wrapped := http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		ctx := propagation.TraceContext{}.Extract(hr.Context(), propagation.HeaderCarrier(hr.Header))
		mw.ServeHTTP(rw, hr.WithContext(ctx))
	})

	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.True(t, strings.EqualFold("0102030405060708090a0b0c0d0e0f10", spans[0].SpanContext.TraceID().String()))
	assert.Equal(t, "0102030405060708", spans[0].Parent.SpanID().String())
}
