package worker_test

import (
	"context"
	"curvelab/internal/plotter"
	mockplotter "curvelab/internal/plotter/mock"
	"curvelab/internal/worker"
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/logger"
	"curvelab/pkg/serrors"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment})
	m.Run()
}

func makeJob(id uuid.UUID, attempt, maxAttempts int) *river.Job[plotter.RenderJobArgs] {
	return &river.Job[plotter.RenderJobArgs]{
		JobRow: &rivertype.JobRow{ID: 1, Attempt: attempt, MaxAttempts: maxAttempts},
		Args:   plotter.RenderJobArgs{ScenarioID: id},
	}
}

func TestRenderWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockplotter.NewMockPlotter(ctrl)
	w := worker.NewRenderWorker(mock)

	id := uuid.New()
	mock.EXPECT().Render(gomock.Any(), domain.ScenarioID(id)).
		Return(&domain.Scenario{Status: domain.RenderStatusCompleted}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(id, 1, 3)))
}

func TestRenderWorker_Work_DeletedScenarioCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockplotter.NewMockPlotter(ctrl)
	w := worker.NewRenderWorker(mock)

	id := uuid.New()
	mock.EXPECT().Render(gomock.Any(), domain.ScenarioID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "scenario not found"))

	require.NoError(t, w.Work(context.Background(), makeJob(id, 1, 3)))
}

func TestRenderWorker_Work_SpecErrorsCancel(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "invalid parameter", err: serrors.With(curve.ErrInvalidParameter, "resource must be positive")},
		{name: "degenerate market", err: serrors.With(curve.ErrDegenerateMarket, "parallel")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockplotter.NewMockPlotter(ctrl)
			w := worker.NewRenderWorker(mock)

			id := uuid.New()
			mock.EXPECT().Render(gomock.Any(), domain.ScenarioID(id)).Return(nil, tt.err)

			err := w.Work(context.Background(), makeJob(id, 1, 3))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRenderWorker_Work_TransientErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockplotter.NewMockPlotter(ctrl)
	w := worker.NewRenderWorker(mock)

	id := uuid.New()
	boom := errors.New("conn reset")
	mock.EXPECT().Render(gomock.Any(), domain.ScenarioID(id)).Return(nil, boom)
	// not the last attempt: the scenario stays pending

	err := w.Work(context.Background(), makeJob(id, 1, 3))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestRenderWorker_Work_LastAttemptMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockplotter.NewMockPlotter(ctrl)
	w := worker.NewRenderWorker(mock)

	id := uuid.New()
	boom := errors.New("conn reset")
	mock.EXPECT().Render(gomock.Any(), domain.ScenarioID(id)).Return(nil, boom)
	mock.EXPECT().MarkFailed(gomock.Any(), domain.ScenarioID(id), gomock.Any()).Return(nil)

	require.ErrorIs(t, w.Work(context.Background(), makeJob(id, 3, 3)), boom)
}
