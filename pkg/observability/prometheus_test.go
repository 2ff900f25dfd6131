package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func TestPrometheusReader(t *testing.T) {
	t.Parallel()

	reader, handler, err := observability.NewPrometheusReader()
	require.NoError(t, err)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { require.NoError(t, mp.Shutdown(context.Background())) })

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	red.RecordParse(context.Background(), observability.OutcomeInvalid)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "weburl_parse_total")
	assert.Contains(t, rec.Body.String(), `outcome="invalid"`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
