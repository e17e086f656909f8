package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/bibbank/ibankit/services/validation-service"

// Recorder counts validation outcomes on an OpenTelemetry meter.
type Recorder struct {
	checks     metric.Int64Counter
	rejections metric.Int64Counter
}

// NewRecorder creates the counters on the provider's meter.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(meterName)

	checks, err := meter.Int64Counter("ibankit.validations",
		metric.WithDescription("Identifiers checked, by operation, country and outcome."),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create validations counter: %w", err)
	}

	rejections, err := meter.Int64Counter("ibankit.rejections",
		metric.WithDescription("Rejection reasons reported, by operation and reason."),
		metric.WithUnit("{reason}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejections counter: %w", err)
	}

	return &Recorder{checks: checks, rejections: rejections}, nil
}

// RecordValidation implements port.ValidationRecorder.
func (r *Recorder) RecordValidation(ctx context.Context, operation, country string, valid bool, reasons []string) {
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	r.checks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("country", country),
		attribute.String("outcome", outcome),
	))
	for _, reason := range reasons {
		r.rejections.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("reason", reason),
		))
	}
}
