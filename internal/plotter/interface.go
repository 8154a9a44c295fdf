package plotter

import (
	"context"
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
)

//go:generate mockgen -package mockplotter -source=interface.go -destination=mock/mockplotter.go *
type Plotter interface {
	Frontier(ctx context.Context, params curve.Params, points int) (curve.Curve, error)
	Probe(ctx context.Context, params curve.Params, x float64) (*domain.Probe, error)
	Classify(ctx context.Context,
		params curve.Params,
		samples []curve.Point,
		tolerance *float64) ([]curve.Classification, error)
	Scatter(ctx context.Context, params curve.Params) ([]curve.Classification, error)
	Market(ctx context.Context, spec domain.MarketSpec) (*domain.Dataset, error)

	Create(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error)
	UserScenarios(ctx context.Context,
		userID domain.UserID,
		kind domain.ScenarioKind,
		cursor string,
		limit uint) ([]domain.Scenario, string, error)
	Get(ctx context.Context, userID domain.UserID, ID domain.ScenarioID) (*domain.Scenario, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.ScenarioID) error

	Render(ctx context.Context, ID domain.ScenarioID) (*domain.Scenario, error)
	MarkFailed(ctx context.Context, ID domain.ScenarioID, reason string) error
}
