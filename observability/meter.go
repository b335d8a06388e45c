package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/fillkit/fillkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the embedding application.
	ServiceName string
	// ServiceVersion is the version of the application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the fill pipeline instruments.
type Metrics struct {
	fills      metric.Int64Counter
	duration   metric.Float64Histogram
	inputBytes metric.Int64Histogram
}

// NewMetrics creates the fill instruments against the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	fills, err := meter.Int64Counter("fillkit.fills",
		metric.WithDescription("Number of fill pipeline invocations"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("fillkit.fill.duration",
		metric.WithDescription("Fill pipeline duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	inputBytes, err := meter.Int64Histogram("fillkit.input.bytes",
		metric.WithDescription("Size of ingested documents"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, err
	}
	return &Metrics{fills: fills, duration: duration, inputBytes: inputBytes}, nil
}

// RecordFill records one pipeline invocation outcome.
func (m *Metrics) RecordFill(ctx context.Context, strategy, status string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("status", status),
	)
	m.fills.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(d.Milliseconds()), attrs)
}

// RecordInputSize records the size of an ingested document.
func (m *Metrics) RecordInputSize(ctx context.Context, source string, bytes int64) {
	m.inputBytes.Record(ctx, bytes, metric.WithAttributes(
		attribute.String("source", source),
	))
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *Metrics
)

// DefaultMetrics returns the shared fill instruments bound to the global
// meter provider. The global provider defaults to a no-op, so recording is
// always safe.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		m, err := NewMetrics(Meter(defaultTracerName))
		if err != nil {
			logger.Warn("fill metrics unavailable", logger.ErrorFields("init_metrics", err))
			return
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// RecordFill records one pipeline invocation on the default instruments.
func RecordFill(ctx context.Context, strategy, status string, d time.Duration) {
	if m := DefaultMetrics(); m != nil {
		m.RecordFill(ctx, strategy, status, d)
	}
}

// RecordInputSize records an ingested document size on the default instruments.
func RecordInputSize(ctx context.Context, source string, bytes int64) {
	if m := DefaultMetrics(); m != nil {
		m.RecordInputSize(ctx, source, bytes)
	}
}
