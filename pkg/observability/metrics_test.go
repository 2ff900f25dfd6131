package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
)

func setupTestMeter(t *testing.T) (*observability.REDMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	return red, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for i := range rm.ScopeMetrics {
		for j := range rm.ScopeMetrics[i].Metrics {
			if rm.ScopeMetrics[i].Metrics[j].Name == name {
				return &rm.ScopeMetrics[i].Metrics[j]
			}
		}
	}

	return nil
}

func sumBy(t *testing.T, m *metricdata.Metrics, key, value string) int64 {
	t.Helper()
	require.NotNil(t, m)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	var total int64

	for _, dp := range sum.DataPoints {
		if v, found := dp.Attributes.Value(attribute.Key(key)); found && v.AsString() == value {
			total += dp.Value
		}
	}

	return total
}

func TestREDMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	red, reader := setupTestMeter(t)
	ctx := context.Background()

	red.RecordRequest(ctx, "/api/parse", observability.StatusOK, time.Millisecond)
	red.RecordRequest(ctx, "/api/parse", observability.StatusOK, time.Millisecond)
	red.RecordRequest(ctx, "/api/parse", observability.StatusError, time.Millisecond)

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), sumBy(t, findMetric(rm, "weburl.requests.total"), "status", "ok"))
	assert.Equal(t, int64(1), sumBy(t, findMetric(rm, "weburl.errors.total"), "op", "/api/parse"))

	hist := findMetric(rm, "weburl.request.duration.seconds")
	require.NotNil(t, hist)

	data, ok := hist.Data.(metricdata.Histogram[float64])
	require.True(t, ok)

	var count uint64
	for _, dp := range data.DataPoints {
		count += dp.Count
	}

	assert.Equal(t, uint64(3), count)
}

func TestREDMetrics_TrackInflight(t *testing.T) {
	t.Parallel()

	red, reader := setupTestMeter(t)
	ctx := context.Background()

	done := red.TrackInflight(ctx, "weburl_parse")
	assert.Equal(t, int64(1), sumBy(t, findMetric(collectMetrics(t, reader), "weburl.inflight.requests"), "op", "weburl_parse"))

	done()
	assert.Equal(t, int64(0), sumBy(t, findMetric(collectMetrics(t, reader), "weburl.inflight.requests"), "op", "weburl_parse"))
}

func TestREDMetrics_ParseAndCache(t *testing.T) {
	t.Parallel()

	red, reader := setupTestMeter(t)
	ctx := context.Background()

	red.RecordParse(ctx, observability.OutcomeValid)
	red.RecordParse(ctx, observability.OutcomeFailure)
	red.RecordParse(ctx, observability.OutcomeFailure)
	red.RecordCacheLookup(ctx, true)
	red.RecordCacheLookup(ctx, false)
	red.RecordCacheLookup(ctx, false)

	rm := collectMetrics(t, reader)

	parses := findMetric(rm, "weburl.parse.total")
	assert.Equal(t, int64(1), sumBy(t, parses, "outcome", observability.OutcomeValid))
	assert.Equal(t, int64(2), sumBy(t, parses, "outcome", observability.OutcomeFailure))

	lookups := findMetric(rm, "weburl.cache.lookups")
	assert.Equal(t, int64(1), sumBy(t, lookups, "result", "hit"))
	assert.Equal(t, int64(2), sumBy(t, lookups, "result", "miss"))
}
