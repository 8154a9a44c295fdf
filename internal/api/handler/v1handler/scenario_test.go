package v1handler_test

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScenarios_RequireAuth(t *testing.T) {
	_, srv, _ := newServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/v1/scenarios"},
		{http.MethodGet, "/v1/scenarios"},
		{http.MethodGet, "/v1/scenarios/" + uuid.NewString()},
		{http.MethodDelete, "/v1/scenarios/" + uuid.NewString()},
	} {
		status, body := do(t, tc.method, srv.URL+tc.path, "", "")
		require.Equal(t, http.StatusUnauthorized, status, tc.path)
		require.Equal(t, "UNAUTHORIZED", body["code"])

		status, _ = do(t, tc.method, srv.URL+tc.path, "garbage", "")
		require.Equal(t, http.StatusUnauthorized, status, tc.path)
	}
}

func TestCreateScenario(t *testing.T) {
	p, srv, token := newServer(t)

	userID := uuid.New()
	scenarioID := uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	probeX := 6.0

	p.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, s domain.Scenario) (*domain.Scenario, error) {
			require.Equal(t, domain.UserID(userID), s.UserID)
			require.Equal(t, "bakery", s.Name)
			require.Equal(t, domain.ScenarioKindFrontier, s.Kind)
			require.Equal(t, &domain.FrontierSpec{Params: testParams, Points: 10, ProbeX: &probeX}, s.Frontier)

			s.ID = domain.ScenarioID(scenarioID)
			s.Status = domain.RenderStatusPending
			s.CreatedAt, s.UpdatedAt = now, now

			return &s, nil
		})

	status, body := do(t, http.MethodPost, srv.URL+"/v1/scenarios", token(userID.String()), `{
		"name": "bakery",
		"frontier": {"params": {"resource": 25, "efficiencyX": 2, "efficiencyY": 1}, "points": 10, "probeX": 6}
	}`)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, scenarioID.String(), body["id"])
	require.Equal(t, "FRONTIER", body["kind"])
	require.Equal(t, "PENDING", body["status"])
	require.Equal(t, "2026-01-02T03:04:05Z", body["createdAt"])
	require.NotContains(t, body, "dataset")
}

func TestCreateScenario_Rejected(t *testing.T) {
	p, srv, token := newServer(t)

	p.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "name is required"))

	status, body := do(t, http.MethodPost, srv.URL+"/v1/scenarios", token(uuid.NewString()),
		`{"market": {"demand": {"slope": -1, "intercept": 5}, "supply": {"slope": 1, "intercept": 5}}}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "name is required", body["message"])

	status, _ = do(t, http.MethodPost, srv.URL+"/v1/scenarios", token(uuid.NewString()), `[]`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestListScenarios(t *testing.T) {
	p, srv, token := newServer(t)

	userID := uuid.New()
	p.EXPECT().UserScenarios(gomock.Any(), domain.UserID(userID), domain.ScenarioKindMarket, "c1", uint(2)).
		Return([]domain.Scenario{
			{
				ID: domain.ScenarioID(uuid.New()), Name: "a", Kind: domain.ScenarioKindMarket,
				Market: &domain.MarketSpec{Demand: curve.LinearCurve{Slope: -1, Intercept: 5}},
				Status: domain.RenderStatusCompleted,
				Dataset: &domain.Dataset{
					Equilibrium: &curve.Equilibrium{Quantity: 0, Price: 5},
				},
			},
			{
				ID: domain.ScenarioID(uuid.New()), Name: "b", Kind: domain.ScenarioKindMarket,
				Market: &domain.MarketSpec{}, Status: domain.RenderStatusFailed, LastError: "parallel",
			},
		}, "c2", nil)

	status, body := do(t, http.MethodGet, srv.URL+"/v1/scenarios?kind=MARKET&cursor=c1&limit=2", token(userID.String()), "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "c2", body["nextCursor"])

	scenarios := body["scenarios"].([]any)
	require.Len(t, scenarios, 2)
	first := scenarios[0].(map[string]any)
	require.Contains(t, first, "dataset")
	require.NotContains(t, first, "error")
	require.Equal(t, "parallel", scenarios[1].(map[string]any)["error"])
}

func TestListScenarios_Limit(t *testing.T) {
	p, srv, token := newServer(t)

	p.EXPECT().UserScenarios(gomock.Any(), gomock.Any(), domain.ScenarioKind(""), "", uint(20)).
		Return(nil, "", nil)

	status, body := do(t, http.MethodGet, srv.URL+"/v1/scenarios", token(uuid.NewString()), "")
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, body["scenarios"])
	require.NotContains(t, body, "nextCursor")

	status, _ = do(t, http.MethodGet, srv.URL+"/v1/scenarios?limit=1000", token(uuid.NewString()), "")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestGetScenario(t *testing.T) {
	p, srv, token := newServer(t)

	userID, scenarioID := uuid.New(), uuid.New()
	p.EXPECT().Get(gomock.Any(), domain.UserID(userID), domain.ScenarioID(scenarioID)).
		Return(&domain.Scenario{ID: domain.ScenarioID(scenarioID), Kind: domain.ScenarioKindFrontier}, nil)
	p.EXPECT().Get(gomock.Any(), domain.UserID(userID), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "scenario not found"))

	status, body := do(t, http.MethodGet, srv.URL+"/v1/scenarios/"+scenarioID.String(), token(userID.String()), "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, scenarioID.String(), body["id"])

	status, body = do(t, http.MethodGet, srv.URL+"/v1/scenarios/"+uuid.NewString(), token(userID.String()), "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", body["code"])

	status, _ = do(t, http.MethodGet, srv.URL+"/v1/scenarios/not-a-uuid", token(userID.String()), "")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteScenario(t *testing.T) {
	p, srv, token := newServer(t)

	userID, scenarioID := uuid.New(), uuid.New()
	p.EXPECT().Delete(gomock.Any(), domain.UserID(userID), domain.ScenarioID(scenarioID)).Return(nil)

	status, body := do(t, http.MethodDelete, srv.URL+"/v1/scenarios/"+scenarioID.String(), token(userID.String()), "")
	require.Equal(t, http.StatusNoContent, status)
	require.Nil(t, body)
}
