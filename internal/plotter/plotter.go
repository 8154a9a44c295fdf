// Package plotter turns curve parameters into chart-ready datasets. It
// serves stateless previews directly and manages saved scenarios, whose
// datasets are rendered by a background job.
package plotter

import (
	"context"
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/logger"
	"curvelab/pkg/metrics"
	"curvelab/pkg/serrors"
	"curvelab/pkg/storage"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Deps are the collaborators of the plotter.
type Deps struct {
	Storage storage.Storage
	// Cache memoizes sampled frontiers. Optional.
	Cache *curve.Cache
	// Metrics records engine operations. Optional.
	Metrics *metrics.Engine
}

type plotter struct {
	options Options
	deps    Deps
}

// Frontier samples the frontier of params.
func (p plotter) Frontier(ctx context.Context, params curve.Params, points int) (curve.Curve, error) {
	if points == 0 {
		points = p.options.SamplePoints
	}
	if err := ValidateParams(params, p.options); err != nil {
		return nil, p.record(ctx, "frontier", 0, err)
	}
	if err := validatePoints("points", points, p.options); err != nil {
		return nil, p.record(ctx, "frontier", 0, err)
	}

	out, err := sampleFrontier(p.deps.Cache, params, points)

	return out, p.record(ctx, "frontier", len(out), err)
}

// Probe evaluates the frontier, its tangent and the opportunity cost at x.
func (p plotter) Probe(ctx context.Context, params curve.Params, x float64) (*domain.Probe, error) {
	if err := ValidateParams(params, p.options); err != nil {
		return nil, p.record(ctx, "probe", 0, err)
	}
	if err := finite("x", x); err != nil {
		return nil, p.record(ctx, "probe", 0, err)
	}

	probe, err := buildProbe(params, x, p.options)
	if err != nil {
		return nil, p.record(ctx, "probe", 0, err)
	}

	return probe, p.record(ctx, "probe", len(probe.Tangent), nil)
}

// Classify classifies samples against the frontier of params. A nil
// tolerance uses the configured default.
func (p plotter) Classify(ctx context.Context,
	params curve.Params,
	samples []curve.Point,
	tolerance *float64) ([]curve.Classification, error) {
	if err := ValidateFrontier(domain.FrontierSpec{
		Params:    params,
		Tolerance: tolerance,
		Samples:   samples,
	}, p.options); err != nil {
		return nil, p.record(ctx, "classify", 0, err)
	}

	tol := p.options.Tolerance
	if tolerance != nil {
		tol = *tolerance
	}
	out := curve.ClassifyAll(samples, params, tol)

	return out, p.record(ctx, "classify", len(out), nil)
}

// Scatter classifies the seeded scatter of the global box against params.
func (p plotter) Scatter(ctx context.Context, params curve.Params) ([]curve.Classification, error) {
	if err := ValidateParams(params, p.options); err != nil {
		return nil, p.record(ctx, "scatter", 0, err)
	}

	samples := curve.Scatter(p.options.ScatterSeed, p.options.ScatterPoints, axisBox(params, p.options))
	out := curve.ClassifyAll(samples, params, p.options.Tolerance)

	return out, p.record(ctx, "scatter", len(out), nil)
}

// Market renders a market spec without storing it.
func (p plotter) Market(ctx context.Context, spec domain.MarketSpec) (*domain.Dataset, error) {
	if err := ValidateMarket(spec, p.options); err != nil {
		return nil, p.record(ctx, "market", 0, err)
	}

	ds, err := buildMarket(spec, p.options)
	if err != nil {
		return nil, p.record(ctx, "market", 0, err)
	}

	return ds, p.record(ctx, "market", countPoints(ds), nil)
}

// Create validates and stores a scenario as pending and enqueues its render
// job in the same transaction, so a stored scenario always has a job.
func (p plotter) Create(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error) {
	scenario.Name = strings.TrimSpace(scenario.Name)
	if scenario.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "scenario name is required")
	}
	if err := Validate(scenario, p.options); err != nil {
		return nil, err
	}

	scenario.Status = domain.RenderStatusPending
	scenario.Dataset = nil

	var stored *domain.Scenario
	if err := p.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if stored, err = tx.StoreScenario(ctx, scenario); err != nil {
			return fmt.Errorf("could not store scenario: %w", err)
		}

		if _, err := tx.AddJob(ctx, NewRenderJobArgs(stored.ID, p.options), nil); err != nil {
			return fmt.Errorf("could not add render job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create scenario: %w", err)
	}

	logger.Debug(ctx, "scenario created",
		zap.String("scenario_id", stored.ID.String()),
		zap.String("kind", string(stored.Kind)))

	return stored, nil
}

// UserScenarios returns a page of the user's scenarios. The cursor is the
// RFC3339Nano creation time returned by the previous page.
func (p plotter) UserScenarios(ctx context.Context,
	userID domain.UserID,
	kind domain.ScenarioKind,
	cursor string,
	limit uint) ([]domain.Scenario, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}
	if kind != "" && kind != domain.ScenarioKindFrontier && kind != domain.ScenarioKindMarket {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown scenario kind %q", kind)
	}

	page, err := p.deps.Storage.UserScenarios(ctx, userID, kind, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user scenarios: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Scenarios, next, nil
}

// Get fetches one of the user's scenarios.
func (p plotter) Get(ctx context.Context, userID domain.UserID, id domain.ScenarioID) (*domain.Scenario, error) {
	res, err := p.deps.Storage.UserScenarioByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scenario: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scenario not found")
	}

	return res, nil
}

// Delete soft-deletes one of the user's scenarios. A render job still in the
// queue finds nothing to render and completes without work.
func (p plotter) Delete(ctx context.Context, userID domain.UserID, id domain.ScenarioID) error {
	res, err := p.deps.Storage.DeleteScenario(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete scenario: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "scenario not found")
	}

	return nil
}

// Render computes and stores the dataset of a pending scenario. Scenarios
// that are no longer pending are returned unchanged. When its frontier or
// market definition is invalid the scenario is marked failed and the
// validation error returned, so the caller can stop retrying.
func (p plotter) Render(ctx context.Context, id domain.ScenarioID) (*domain.Scenario, error) {
	scenario, err := p.deps.Storage.ScenarioByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scenario: %w", err)
	}
	if scenario == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scenario not found")
	}
	if scenario.Status != domain.RenderStatusPending {
		return scenario, nil
	}

	ds, buildErr := Build(*scenario, p.options, p.deps.Cache)
	_ = p.record(ctx, "render", countPoints(ds), buildErr)
	if buildErr != nil {
		if !IsSpecError(buildErr) {
			return nil, fmt.Errorf("could not render scenario: %w", buildErr)
		}
		if err := p.MarkFailed(ctx, id, buildErr.Error()); err != nil {
			return nil, err
		}

		return nil, buildErr
	}

	cleared := ""
	updated, err := p.deps.Storage.UpdateScenarioByID(ctx, id, storage.ScenarioUpdates{
		Status:    domain.RenderStatusCompleted,
		Dataset:   ds,
		LastError: &cleared,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store rendered dataset: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scenario not found")
	}

	return updated, nil
}

// MarkFailed marks a scenario as failed with reason.
func (p plotter) MarkFailed(ctx context.Context, id domain.ScenarioID, reason string) error {
	if _, err := p.deps.Storage.UpdateScenarioByID(ctx, id, storage.ScenarioUpdates{
		Status:    domain.RenderStatusFailed,
		LastError: &reason,
	}); err != nil {
		return fmt.Errorf("could not mark scenario failed: %w", err)
	}

	return nil
}

// IsSpecError reports whether err is caused by the scenario's own
// parameters, as opposed to an infrastructure failure worth retrying.
func IsSpecError(err error) bool {
	return errors.Is(err, curve.ErrInvalidParameter) ||
		errors.Is(err, curve.ErrDegenerateMarket) ||
		errors.Is(err, serrors.ErrBadRequest)
}

func (p plotter) record(ctx context.Context, operation string, points int, err error) error {
	p.deps.Metrics.Record(ctx, operation, points, err)

	return err
}

func countPoints(ds *domain.Dataset) int {
	if ds == nil {
		return 0
	}

	n := 0
	for _, s := range ds.Series {
		n += len(s.Points)
	}

	return n
}

// New creates a new Plotter.
func New(deps Deps, options Options) Plotter {
	return &plotter{
		options: options,
		deps:    deps,
	}
}
