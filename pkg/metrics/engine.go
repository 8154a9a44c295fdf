package metrics

import (
	"context"
	"curvelab/pkg/serrors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "curvelab/engine"

// Engine counts curve computations. A nil *Engine records nothing.
type Engine struct {
	operations metric.Int64Counter
	failures   metric.Int64Counter
	points     metric.Int64Histogram
}

// NewEngine creates the engine instruments on mp.
func NewEngine(mp metric.MeterProvider) (*Engine, error) {
	meter := mp.Meter(meterName)

	operations, err := meter.Int64Counter("curvelab_engine_operations",
		metric.WithDescription("Curve engine operations by name."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	failures, err := meter.Int64Counter("curvelab_engine_failures",
		metric.WithDescription("Curve engine operations that returned an error, by error kind."))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}

	points, err := meter.Int64Histogram("curvelab_engine_points",
		metric.WithDescription("Number of points produced per sampling operation."),
		metric.WithExplicitBucketBoundaries(2, 10, 50, 100, 200, 500, 1000, 2000))
	if err != nil {
		return nil, fmt.Errorf("could not create points histogram: %w", err)
	}

	return &Engine{operations: operations, failures: failures, points: points}, nil
}

// Record counts one operation. points is recorded when positive; err, when
// non-nil, is counted as a failure labelled with its semantic kind.
func (e *Engine) Record(ctx context.Context, operation string, points int, err error) {
	if e == nil {
		return
	}

	op := metric.WithAttributes(attribute.String("operation", operation))
	e.operations.Add(ctx, 1, op)
	if points > 0 {
		e.points.Record(ctx, int64(points), op)
	}
	if err != nil {
		kind := "UNKNOWN"
		if k := serrors.KindOf(err); k != nil {
			kind = k.Error()
		}
		e.failures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("kind", kind),
		))
	}
}
