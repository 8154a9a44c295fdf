package postgres

import (
	"curvelab/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PgScenario is the row layout of the scenarios table. Spec holds the JSON of
// either the frontier or the market spec, depending on Kind.
type PgScenario struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name    string `db:"name"`
	Kind    string `db:"kind"`
	Spec    []byte `db:"spec"`
	Status  string `db:"status"`
	Dataset []byte `db:"dataset" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgScenario) ToDomain() (*domain.Scenario, error) {
	s := &domain.Scenario{
		ID:        domain.ScenarioID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Name:      p.Name,
		Kind:      domain.ScenarioKind(p.Kind),
		Status:    domain.RenderStatus(p.Status),
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}

	var err error
	switch s.Kind {
	case domain.ScenarioKindFrontier:
		s.Frontier = &domain.FrontierSpec{}
		err = json.Unmarshal(p.Spec, s.Frontier)
	case domain.ScenarioKindMarket:
		s.Market = &domain.MarketSpec{}
		err = json.Unmarshal(p.Spec, s.Market)
	default:
		return nil, fmt.Errorf("unknown scenario kind %q", p.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal scenario spec: %w", err)
	}

	if len(p.Dataset) > 0 {
		s.Dataset = &domain.Dataset{}
		if err := json.Unmarshal(p.Dataset, s.Dataset); err != nil {
			return nil, fmt.Errorf("could not unmarshal scenario dataset: %w", err)
		}
	}

	return s, nil
}

func (p *PgScenario) FromDomain(s domain.Scenario) error {
	var spec any
	switch s.Kind {
	case domain.ScenarioKindFrontier:
		spec = s.Frontier
	case domain.ScenarioKindMarket:
		spec = s.Market
	default:
		return fmt.Errorf("unknown scenario kind %q", s.Kind)
	}

	specJSON, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("could not marshal scenario spec: %w", err)
	}

	var dataset []byte
	if s.Dataset != nil {
		if dataset, err = json.Marshal(s.Dataset); err != nil {
			return fmt.Errorf("could not marshal scenario dataset: %w", err)
		}
	}

	*p = PgScenario{
		ID:       uuid.UUID(s.ID),
		UserID:   uuid.UUID(s.UserID),
		Name:     s.Name,
		Kind:     string(s.Kind),
		Spec:     specJSON,
		Status:   string(s.Status),
		Dataset:  dataset,
		Attempts: s.Attempts,
		LastError: sql.NullString{
			String: s.LastError,
			Valid:  s.LastError != "",
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  s.UpdatedAt,
			Valid: !s.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  s.DeletedAt,
			Valid: !s.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgScenariosToDomain(rows []PgScenario) ([]domain.Scenario, error) {
	out := make([]domain.Scenario, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
