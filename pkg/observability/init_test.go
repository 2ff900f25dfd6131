package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func TestInit_NoopWhenNoEndpoint(t *testing.T) {
	t.Parallel()

	providers, err := observability.Init(observability.DefaultConfig())
	require.NoError(t, err)

	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.Logger)

	_, span := providers.Tracer.Start(context.Background(), "parse")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
}

func TestInit_ExtraMetricReader(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()

	cfg := observability.DefaultConfig()
	cfg.Mode = observability.ModeServe
	cfg.ServiceVersion = "1.2.3"
	cfg.MetricReaders = []sdkmetric.Reader{reader}

	providers, err := observability.Init(cfg)
	require.NoError(t, err)

	red, err := observability.NewREDMetrics(providers.Meter)
	require.NoError(t, err)

	red.RecordParse(context.Background(), observability.OutcomeValid)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	assert.NotNil(t, findMetric(rm, "weburl.parse.total"))

	name, ok := rm.Resource.Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "weburl", name.AsString())

	require.NoError(t, providers.Shutdown(context.Background()))
}

func TestParseOTLPHeaders(t *testing.T) {
	t.Parallel()

	assert.Nil(t, observability.ParseOTLPHeaders(""))
	assert.Nil(t, observability.ParseOTLPHeaders("junk,=x"))
	assert.Equal(t,
		map[string]string{"api-key": "secret", "team": "web"},
		observability.ParseOTLPHeaders(" api-key = secret ,team=web,broken"),
	)
}
