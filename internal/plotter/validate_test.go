package plotter_test

import (
	"curvelab/internal/plotter"
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func frontierSpec() *domain.FrontierSpec {
	return &domain.FrontierSpec{Params: curve.Params{Resource: 25, EfficiencyX: 2, EfficiencyY: 1}}
}

func marketSpec() *domain.MarketSpec {
	return &domain.MarketSpec{
		Demand: curve.LinearCurve{Slope: -1, Intercept: 5},
		Supply: curve.LinearCurve{Slope: 1, Intercept: 5},
	}
}

func TestValidate(t *testing.T) {
	opts := plotter.DefaultOptions()

	tests := []struct {
		name     string
		scenario func() domain.Scenario
		wantErr  error
	}{
		{
			name: "valid frontier",
			scenario: func() domain.Scenario {
				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: frontierSpec()}
			},
		},
		{
			name: "valid market",
			scenario: func() domain.Scenario {
				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: marketSpec()}
			},
		},
		{
			name: "unknown kind",
			scenario: func() domain.Scenario {
				return domain.Scenario{Kind: "SPHERE", Frontier: frontierSpec()}
			},
			wantErr: serrors.ErrBadRequest,
		},
		{
			name: "kind without its spec",
			scenario: func() domain.Scenario {
				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Market: marketSpec()}
			},
			wantErr: serrors.ErrBadRequest,
		},
		{
			name: "both specs",
			scenario: func() domain.Scenario {
				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: marketSpec(), Frontier: frontierSpec()}
			},
			wantErr: serrors.ErrBadRequest,
		},
		{
			name: "zero resource",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Params.Resource = 0

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "resource above slider maximum",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Params.Resource = 41

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "single point",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Points = 1

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "too many points",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Points = opts.MaxSamplePoints + 1

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "non-finite probe",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.ProbeX = ptr(math.Inf(1))

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "NaN sample",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Samples = []curve.Point{{X: 1, Y: 1}, {X: math.NaN(), Y: 1}}

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "negative tolerance is allowed",
			scenario: func() domain.Scenario {
				s := frontierSpec()
				s.Tolerance = ptr(-1.0)

				return domain.Scenario{Kind: domain.ScenarioKindFrontier, Frontier: s}
			},
		},
		{
			name: "parallel market",
			scenario: func() domain.Scenario {
				s := marketSpec()
				s.Supply.Slope = -1

				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: s}
			},
			wantErr: curve.ErrDegenerateMarket,
		},
		{
			name: "non-finite shift",
			scenario: func() domain.Scenario {
				s := marketSpec()
				s.DemandShift = math.NaN()

				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "negative quantity range",
			scenario: func() domain.Scenario {
				s := marketSpec()
				s.QuantityMax = -1

				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
		{
			name: "unknown relation",
			scenario: func() domain.Scenario {
				s := marketSpec()
				s.Move = &domain.MoveSpec{Quantity: 1, DeltaQuantity: 1, Relation: "RIVALS"}

				return domain.Scenario{Kind: domain.ScenarioKindMarket, Market: s}
			},
			wantErr: curve.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plotter.Validate(tt.scenario(), opts)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeMarket(t *testing.T) {
	spec := *marketSpec()
	spec.Demand.Intercept = 3

	opts := plotter.DefaultOptions()
	clamped := plotter.NormalizeMarket(spec, opts)
	require.InDelta(t, 5.0, clamped.Demand.Intercept, 0)
	require.InDelta(t, 3.0, spec.Demand.Intercept, 0, "input must not be modified")

	opts.AllowNegativeEquilibrium = true
	require.Equal(t, spec, plotter.NormalizeMarket(spec, opts))
}
