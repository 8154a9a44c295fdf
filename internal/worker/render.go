package worker

import (
	"context"
	"curvelab/internal/plotter"
	"curvelab/pkg/domain"
	"curvelab/pkg/logger"
	"curvelab/pkg/serrors"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RenderWorker computes the dataset of a saved scenario.
//
// A scenario that no longer exists completes the job without work. A spec
// that cannot be rendered (invalid parameters, parallel market curves) is
// marked failed by the plotter and the job is cancelled, since retrying the
// same input cannot succeed. Other errors are retried by river; on the last
// attempt the scenario is marked failed so clients stop waiting for it.
type RenderWorker struct {
	river.WorkerDefaults[plotter.RenderJobArgs]

	plotter plotter.Plotter
}

// NewRenderWorker constructs a RenderWorker using the provided plotter.
func NewRenderWorker(p plotter.Plotter) *RenderWorker {
	return &RenderWorker{plotter: p}
}

// Work renders one scenario and maps the outcome to a river action.
func (w *RenderWorker) Work(ctx context.Context, job *river.Job[plotter.RenderJobArgs]) error {
	id := domain.ScenarioID(job.Args.ScenarioID)
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("scenarioID", id.String()),
		zap.Int("attempt", job.Attempt))

	scenario, err := w.plotter.Render(ctx, id)
	switch {
	case err == nil:
		logger.Debug(ctx, "scenario rendered", zap.String("status", string(scenario.Status)))

		return nil
	case errors.Is(err, serrors.ErrNotFound):
		logger.Info(ctx, "scenario is gone, nothing to render")

		return nil
	case plotter.IsSpecError(err):
		logger.Warn(ctx, "scenario cannot be rendered", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in rendering scenario", zap.Error(err))

	if job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts {
		if markErr := w.plotter.MarkFailed(ctx, id, err.Error()); markErr != nil {
			logger.Error(ctx, "could not mark scenario failed", zap.Error(markErr))
		}
	}

	return fmt.Errorf("could not render scenario: %w", err)
}
