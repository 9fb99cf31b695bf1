package controller

import (
	"fmt"
	"hellofood/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the latency of every request in
// the http_server_duration histogram, labeled by method and status code.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	duration, err := meter.Float64Histogram("http_server_duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create http duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("status_code", strconv.Itoa(rec.status)),
			))
		})
	}, nil
}
