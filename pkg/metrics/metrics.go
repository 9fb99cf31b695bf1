// Package metrics sets up the OpenTelemetry meter provider exported through
// Prometheus and defines the domain instruments recorded by the services.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of every instrument of the service.
const MeterName = "hellofood"

// NewMeterProvider returns a meter provider whose instruments are exposed on
// the given Prometheus registerer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Metrics holds the domain instruments. A nil *Metrics records nothing.
type Metrics struct {
	deliveriesCreated metric.Int64Counter
	deliveryTotal     metric.Float64Histogram
	handlingEvents    metric.Int64Counter
	notifications     metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	deliveriesCreated, err := meter.Int64Counter("deliveries_created",
		metric.WithDescription("Number of deliveries created"))
	if err != nil {
		return nil, fmt.Errorf("could not create deliveries counter: %w", err)
	}

	deliveryTotal, err := meter.Float64Histogram("delivery_total",
		metric.WithDescription("Total price of created deliveries"),
		metric.WithExplicitBucketBoundaries(10, 25, 50, 100, 200, 500, 1000))
	if err != nil {
		return nil, fmt.Errorf("could not create delivery total histogram: %w", err)
	}

	handlingEvents, err := meter.Int64Counter("handling_events_recorded",
		metric.WithDescription("Number of handling events recorded"))
	if err != nil {
		return nil, fmt.Errorf("could not create handling events counter: %w", err)
	}

	notifications, err := meter.Int64Counter("notifications",
		metric.WithDescription("Customer notifications by kind and outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create notifications counter: %w", err)
	}

	return &Metrics{
		deliveriesCreated: deliveriesCreated,
		deliveryTotal:     deliveryTotal,
		handlingEvents:    handlingEvents,
		notifications:     notifications,
	}, nil
}

func (m *Metrics) DeliveryCreated(ctx context.Context, total decimal.Decimal) {
	if m == nil {
		return
	}

	m.deliveriesCreated.Add(ctx, 1)
	m.deliveryTotal.Record(ctx, total.InexactFloat64())
}

func (m *Metrics) HandlingEventRecorded(ctx context.Context) {
	if m == nil {
		return
	}

	m.handlingEvents.Add(ctx, 1)
}

// NotificationSent counts a notification attempt; failed tells whether the
// notifier returned an error.
func (m *Metrics) NotificationSent(ctx context.Context, kind string, failed bool) {
	if m == nil {
		return
	}

	outcome := "sent"
	if failed {
		outcome = "failed"
	}
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}
