package observability

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRequestsTotal   = "prlens.requests.total"
	metricRequestDuration = "prlens.request.duration.seconds"

	attrPath = "path"
)

// durationBucketBoundaries covers 1ms to 10s; dashboard pages recompute every
// aggregation per request and stay well inside this range.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// RequestMetrics holds the serve command's per-request instruments.
type RequestMetrics struct {
	requestsTotal   metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewRequestMetrics creates the request instruments from a meter.
func NewRequestMetrics(mt metric.Meter) (*RequestMetrics, error) {
	total, err := mt.Int64Counter(
		metricRequestsTotal,
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := mt.Float64Histogram(
		metricRequestDuration,
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, err
	}

	return &RequestMetrics{requestsTotal: total, requestDuration: duration}, nil
}

// Middleware wraps an [http.Handler] with request counting and timing.
func (rm *RequestMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()

		next.ServeHTTP(rw, req)

		attrs := metric.WithAttributes(attribute.String(attrPath, req.URL.Path))

		rm.requestsTotal.Add(req.Context(), 1, attrs)
		rm.requestDuration.Record(req.Context(), time.Since(start).Seconds(), attrs)
	})
}
