package controller_test

import (
	"curvelab/pkg/controller"
	"curvelab/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	duration, err := metrics.NewHTTPDuration(reg)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/scenarios/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := controller.WithMetrics(duration)(mux)

	for _, path := range []string{"/v1/scenarios/a", "/v1/scenarios/b", "/nowhere"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	counts := map[string]uint64{}
	for _, m := range families[0].GetMetric() {
		labels := map[string]string{}
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		require.Equal(t, "404", labels["code"])
		counts[labels["route"]] = m.GetHistogram().GetSampleCount()
	}
	require.Equal(t, map[string]uint64{
		"GET /v1/scenarios/{id}": 2,
		"unmatched":              1,
	}, counts)
}
