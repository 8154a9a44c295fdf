package v1handler_test

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testParams = curve.Params{Resource: 25, EfficiencyX: 2, EfficiencyY: 1} //nolint: gochecknoglobals

func TestFrontier(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Frontier(gomock.Any(), testParams, 3).
		Return(curve.Curve{{X: 0, Y: 5}, {X: 5, Y: 4.330127018922194}, {X: 10, Y: 0}}, nil)

	status, body := do(t, http.MethodGet, srv.URL+"/v1/frontier?resource=25&efficiencyX=2&efficiencyY=1&points=3", "", "")
	require.Equal(t, http.StatusOK, status)
	require.InDelta(t, 10.0, body["xMax"], 1e-12)
	require.InDelta(t, 5.0, body["yMax"], 1e-12)

	points := body["points"].([]any)
	require.Len(t, points, 3)
	require.Equal(t, map[string]any{"x": 0.0, "y": 5.0}, points[0])
	require.Equal(t, map[string]any{"x": 10.0, "y": 0.0}, points[2])
}

func TestFrontier_BadQuery(t *testing.T) {
	_, srv, _ := newServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing resource", query: "efficiencyX=2&efficiencyY=1"},
		{name: "not a number", query: "resource=abc&efficiencyX=2&efficiencyY=1"},
		{name: "points not an integer", query: "resource=25&efficiencyX=2&efficiencyY=1&points=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, http.MethodGet, srv.URL+"/v1/frontier?"+tt.query, "", "")
			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, "BAD_REQUEST", body["code"])
		})
	}
}

func TestFrontier_InvalidParameter(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Frontier(gomock.Any(), curve.Params{Resource: 0, EfficiencyX: 2, EfficiencyY: 1}, 0).
		Return(nil, invalidParameter("resource must be positive"))

	status, body := do(t, http.MethodGet, srv.URL+"/v1/frontier?resource=0&efficiencyX=2&efficiencyY=1", "", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "INVALID_PARAMETER", body["code"])
	require.Equal(t, "resource must be positive", body["message"])
}

func TestProbe(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Probe(gomock.Any(), testParams, 6.0).Return(&domain.Probe{
		X: 6, Y: 4, Slope: -0.375, OpportunityCost: 0.375,
		Tangent: curve.Curve{{X: 5, Y: 4.375}, {X: 7, Y: 3.625}},
	}, nil)

	status, body := do(t, http.MethodGet, srv.URL+"/v1/frontier/probe?resource=25&efficiencyX=2&efficiencyY=1&x=6", "", "")
	require.Equal(t, http.StatusOK, status)
	require.InDelta(t, 4.0, body["y"], 1e-12)
	require.InDelta(t, -0.375, body["slope"], 1e-12)
	require.InDelta(t, 0.375, body["opportunityCost"], 1e-12)
	require.Len(t, body["tangent"], 2)
}

func TestClassify(t *testing.T) {
	p, srv, _ := newServer(t)

	samples := []curve.Point{{X: 6, Y: 4}, {X: 1, Y: 1}, {X: 9, Y: 9}}
	zero := 0.0
	p.EXPECT().Classify(gomock.Any(), testParams, gomock.Any(), &zero).
		DoAndReturn(func(_ any, _ curve.Params, got []curve.Point, _ *float64) ([]curve.Classification, error) {
			require.Equal(t, samples, got)

			return curve.ClassifyAll(got, testParams, 0), nil
		})

	status, body := do(t, http.MethodPost, srv.URL+"/v1/frontier/classify", "", `{
		"params": {"resource": 25, "efficiencyX": 2, "efficiencyY": 1},
		"tolerance": 0,
		"samples": [{"x": 6, "y": 4}, {"x": 1, "y": 1}, {"x": 9, "y": 9}]
	}`)
	require.Equal(t, http.StatusOK, status)

	classified := body["classified"].([]any)
	require.Len(t, classified, 3)
	require.Equal(t, "ON_BOUNDARY", classified[0].(map[string]any)["region"])
	require.Equal(t, map[string]any{"FEASIBLE": 1.0, "ON_BOUNDARY": 1.0, "INFEASIBLE": 1.0}, body["counts"])
}

func TestClassify_BadBody(t *testing.T) {
	_, srv, _ := newServer(t)

	for name, payload := range map[string]string{
		"malformed": `{"params": `,
		"no samples": `{"params": {"resource": 25, "efficiencyX": 2, "efficiencyY": 1}}`,
		"string x":   `{"samples": [{"x": "6", "y": 4}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			status, body := do(t, http.MethodPost, srv.URL+"/v1/frontier/classify", "", payload)
			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, "BAD_REQUEST", body["code"])
		})
	}
}

func TestScatter(t *testing.T) {
	p, srv, _ := newServer(t)

	p.EXPECT().Scatter(gomock.Any(), testParams).Return([]curve.Classification{
		{Point: curve.Point{X: 1, Y: 1}, Region: curve.RegionFeasible},
		{Point: curve.Point{X: 20, Y: 20}, Region: curve.RegionInfeasible},
	}, nil)

	status, body := do(t, http.MethodGet, srv.URL+"/v1/frontier/scatter?resource=25&efficiencyX=2&efficiencyY=1", "", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["classified"], 2)
	require.Equal(t, map[string]any{"FEASIBLE": 1.0, "ON_BOUNDARY": 0.0, "INFEASIBLE": 1.0}, body["counts"])
}
