package postgres

import (
	"context"
	"curvelab/pkg/domain"
	"curvelab/pkg/storage"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scenariosTable = "scenarios"
)

func (p *PgSQL) StoreScenario(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error) {
	var row PgScenario
	if err := row.FromDomain(scenario); err != nil {
		return nil, err
	}

	var stored PgScenario
	if _, err := p.Builder.Insert(scenariosTable).
		Rows(row).
		Returning(&PgScenario{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scenario into pg: %w", err)
	}

	return stored.ToDomain()
}

// UpdateScenarioByID sets the status and the provided optional fields,
// increments attempts and stamps updated_at.
func (p *PgSQL) UpdateScenarioByID(ctx context.Context,
	id domain.ScenarioID,
	updates storage.ScenarioUpdates) (*domain.Scenario, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Dataset != nil {
		b, err := json.Marshal(updates.Dataset)
		if err != nil {
			return nil, fmt.Errorf("could not marshal dataset: %w", err)
		}

		rec["dataset"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgScenario
	found, err := p.Builder.Update(scenariosTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScenario{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scenario in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteScenario performs a soft delete by setting deleted_at.
func (p *PgSQL) DeleteScenario(ctx context.Context,
	userID domain.UserID,
	id domain.ScenarioID) (*domain.Scenario, error) {
	var row PgScenario
	found, err := p.Builder.Update(scenariosTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScenario{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scenario in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserScenarios pages through a user's scenarios ordered by created_at DESC, id DESC.
func (p *PgSQL) UserScenarios(ctx context.Context,
	userID domain.UserID,
	kind domain.ScenarioKind,
	cursor time.Time,
	limit uint) (storage.UserScenarios, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// one extra row tells whether there is a next page
	var rows []PgScenario
	if err := p.Builder.From(scenariosTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserScenarios{}, fmt.Errorf("could not fetch user scenarios from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			next := rows[len(rows)-1].CreatedAt
			nextCursor = &next
		}
	}

	scenarios, err := pgScenariosToDomain(rows)
	if err != nil {
		return storage.UserScenarios{}, err
	}

	return storage.UserScenarios{
		Scenarios:  scenarios,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) UserScenarioByID(ctx context.Context,
	userID domain.UserID,
	id domain.ScenarioID) (*domain.Scenario, error) {
	return p.scenarioWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	)
}

func (p *PgSQL) ScenarioByID(ctx context.Context, id domain.ScenarioID) (*domain.Scenario, error) {
	return p.scenarioWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) scenarioWhere(ctx context.Context, where ...goqu.Expression) (*domain.Scenario, error) {
	var row PgScenario
	found, err := p.Builder.From(scenariosTable).
		Where(append(where, goqu.I("deleted_at").IsNull())...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scenario: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
