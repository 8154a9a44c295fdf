package domain_test

import (
	"curvelab/pkg/domain"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDsEncodeAsUUIDStrings(t *testing.T) {
	id := uuid.MustParse("0b6f5c2e-4c1a-4d3c-9d7e-3f3b0c9a1e11")

	out, err := json.Marshal(struct {
		Scenario domain.ScenarioID `json:"scenario"`
		User     domain.UserID     `json:"user"`
	}{domain.ScenarioID(id), domain.UserID(id)})
	require.NoError(t, err)
	require.JSONEq(t, `{"scenario":"`+id.String()+`","user":"`+id.String()+`"}`, string(out))

	var back domain.ScenarioID
	require.NoError(t, back.UnmarshalText([]byte(id.String())))
	require.Equal(t, domain.ScenarioID(id), back)
}

func TestParseScenarioID(t *testing.T) {
	id := uuid.New()

	got, err := domain.ParseScenarioID(id.String())
	require.NoError(t, err)
	require.Equal(t, domain.ScenarioID(id), got)

	_, err = domain.ParseScenarioID("not-a-uuid")
	require.Error(t, err)
}
