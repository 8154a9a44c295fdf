package v1handler_test

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func invalidParameter(msg string) error {
	return serrors.With(curve.ErrInvalidParameter, "%s", msg)
}

const marketBody = `{
	"demand": {"slope": -1, "intercept": 5},
	"supply": {"slope": 1, "intercept": 5},
	"demandShift": 2,
	"move": {"quantity": 1, "deltaQuantity": 1, "relation": "SUBSTITUTES"}
}`

func TestEquilibrium_DropsShiftAndMove(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Market(gomock.Any(), domain.MarketSpec{
		Demand: curve.LinearCurve{Slope: -1, Intercept: 5},
		Supply: curve.LinearCurve{Slope: 1, Intercept: 5},
	}).Return(&domain.Dataset{
		Series:      []domain.Series{{Name: "demand", Points: curve.Curve{{X: 0, Y: 5}}}},
		Equilibrium: &curve.Equilibrium{Quantity: 0, Price: 5},
	}, nil)

	status, body := do(t, http.MethodPost, srv.URL+"/v1/market/equilibrium", "", marketBody)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{"quantity": 0.0, "price": 5.0}, body["equilibrium"])
	require.Len(t, body["series"], 1)
}

func TestEquilibrium_Degenerate(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Market(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(curve.ErrDegenerateMarket, "demand and supply have the same slope"))

	status, body := do(t, http.MethodPost, srv.URL+"/v1/market/equilibrium", "", `{
		"demand": {"slope": 1, "intercept": 5},
		"supply": {"slope": 1, "intercept": 2}
	}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "DEGENERATE_MARKET", body["code"])
}

func TestShift(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Market(gomock.Any(), domain.MarketSpec{
		Demand:      curve.LinearCurve{Slope: -1, Intercept: 5},
		Supply:      curve.LinearCurve{Slope: 1, Intercept: 5},
		DemandShift: 2,
	}).Return(&domain.Dataset{Equilibrium: &curve.Equilibrium{Quantity: 1, Price: 6}}, nil)

	status, body := do(t, http.MethodPost, srv.URL+"/v1/market/shift", "", marketBody)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{"quantity": 1.0, "price": 6.0}, body["equilibrium"])

	status, body = do(t, http.MethodPost, srv.URL+"/v1/market/shift", "", `{
		"demand": {"slope": -1, "intercept": 5},
		"supply": {"slope": 1, "intercept": 5}
	}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "BAD_REQUEST", body["code"])
}

func TestMove(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Market(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, spec domain.MarketSpec) (*domain.Dataset, error) {
			require.Equal(t, &domain.MoveSpec{Quantity: 1, DeltaQuantity: 1, Relation: curve.Substitutes}, spec.Move)

			return &domain.Dataset{
				Movement: &curve.Movement{
					From: curve.Point{X: 1, Y: 6}, To: curve.Point{X: 2, Y: 5},
					DeltaQuantity: 1, DeltaPrice: -1,
				},
				Related: &domain.RelatedMarket{
					Relation: curve.Substitutes,
					Shift:    -1,
					Demand:   curve.LinearCurve{Slope: -1, Intercept: 4},
				},
			}, nil
		})

	status, body := do(t, http.MethodPost, srv.URL+"/v1/market/move", "", marketBody)
	require.Equal(t, http.StatusOK, status)

	movement := body["movement"].(map[string]any)
	require.InDelta(t, -1.0, movement["deltaPrice"], 1e-12)
	related := body["related"].(map[string]any)
	require.Equal(t, "SUBSTITUTES", related["relation"])

	status, _ = do(t, http.MethodPost, srv.URL+"/v1/market/move", "", `{"demand": {"slope": -1, "intercept": 5}}`)
	require.Equal(t, http.StatusBadRequest, status)
}
