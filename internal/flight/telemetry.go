package flight

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "flightfinder/internal/flight"

var tracer = otel.Tracer(instrumentationName)

// searchMetrics counts finished searches by outcome.
type searchMetrics struct {
	completed metric.Int64Counter
}

func newSearchMetrics() searchMetrics {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"flightfinder.search.completed",
		metric.WithDescription("Finished flight searches by outcome"),
	)
	if err != nil {
		return searchMetrics{completed: noop.Int64Counter{}}
	}
	return searchMetrics{completed: counter}
}

func (m searchMetrics) record(ctx context.Context, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, context.Canceled):
		outcome = "cancelled"
	case err != nil:
		outcome = string(ReasonOf(err))
	}
	m.completed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
