package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRequestsTotal    = "weburl.requests.total"
	metricRequestDuration  = "weburl.request.duration.seconds"
	metricErrorsTotal      = "weburl.errors.total"
	metricInflightRequests = "weburl.inflight.requests"
	metricParseTotal       = "weburl.parse.total"
	metricCacheLookups     = "weburl.cache.lookups"

	attrOp      = "op"
	attrStatus  = "status"
	attrOutcome = "outcome"
	attrResult  = "result"

	// StatusOK and StatusError label request outcomes.
	StatusOK    = "ok"
	StatusError = "error"
)

// Parse outcomes.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeFailure = "failure"
)

// URL parsing finishes in microseconds; requests carry JSON overhead on top.
var durationBucketBoundaries = []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1}

// REDMetrics holds the rate, error and duration instruments for requests
// served over HTTP or MCP.
type REDMetrics struct {
	requestsTotal    metric.Int64Counter
	requestDuration  metric.Float64Histogram
	errorsTotal      metric.Int64Counter
	inflightRequests metric.Int64UpDownCounter
	parseTotal       metric.Int64Counter
	cacheLookups     metric.Int64Counter
}

// NewREDMetrics creates the instruments on mt.
func NewREDMetrics(mt metric.Meter) (*REDMetrics, error) {
	var (
		rm  REDMetrics
		err error
	)

	rm.requestsTotal, err = mt.Int64Counter(metricRequestsTotal,
		metric.WithDescription("Total number of requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestsTotal, err)
	}

	rm.requestDuration, err = mt.Float64Histogram(metricRequestDuration,
		metric.WithDescription("Request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestDuration, err)
	}

	rm.errorsTotal, err = mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	rm.inflightRequests, err = mt.Int64UpDownCounter(metricInflightRequests,
		metric.WithDescription("Number of in-flight requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricInflightRequests, err)
	}

	rm.parseTotal, err = mt.Int64Counter(metricParseTotal,
		metric.WithDescription("URLs parsed, by outcome"),
		metric.WithUnit("{url}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricParseTotal, err)
	}

	rm.cacheLookups, err = mt.Int64Counter(metricCacheLookups,
		metric.WithDescription("Parse cache lookups, by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheLookups, err)
	}

	return &rm, nil
}

// RecordRequest records a completed request.
func (rm *REDMetrics) RecordRequest(ctx context.Context, op, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	rm.requestsTotal.Add(ctx, 1, attrs)
	rm.requestDuration.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		rm.errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOp, op)))
	}
}

// TrackInflight increments the in-flight gauge and returns its decrement.
func (rm *REDMetrics) TrackInflight(ctx context.Context, op string) func() {
	attrs := metric.WithAttributes(attribute.String(attrOp, op))
	rm.inflightRequests.Add(ctx, 1, attrs)

	return func() {
		rm.inflightRequests.Add(ctx, -1, attrs)
	}
}

// RecordParse counts one parsed URL. outcome is OutcomeValid,
// OutcomeInvalid (parsed with validation errors) or OutcomeFailure.
func (rm *REDMetrics) RecordParse(ctx context.Context, outcome string) {
	rm.parseTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOutcome, outcome)))
}

// RecordCacheLookup counts a parse cache hit or miss.
func (rm *REDMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	rm.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, result)))
}
