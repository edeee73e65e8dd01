package tipcalc

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	opsCounter      metric.Int64Counter
	opsHistogram    metric.Float64Histogram
	errorCounter    metric.Int64Counter
	fallbackCounter metric.Int64Counter
	totalGauge      metric.Float64Gauge
)

// InitMetrics registers OTel metric instruments for the tip domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("tipcalc")

	var err error

	opsCounter, err = meter.Int64Counter("tipcalc.operations.total",
		metric.WithDescription("Total number of tip operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("tipcalc.operation.duration",
		metric.WithDescription("Duration of tip operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("tipcalc.errors.total",
		metric.WithDescription("Total number of rejected tip requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	fallbackCounter, err = meter.Int64Counter("tipcalc.input.fallbacks.total",
		metric.WithDescription("Input fields that could not be parsed and used their default"),
		metric.WithUnit("{field}"),
	)
	if err != nil {
		return fmt.Errorf("creating fallback counter: %w", err)
	}

	totalGauge, err = meter.Float64Gauge("tipcalc.last_total",
		metric.WithDescription("The total of the last calculated bill"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating total gauge: %w", err)
	}

	return nil
}
