package storage

import (
	"context"
	"curvelab/pkg/domain"
	"time"
)

// ScenarioUpdates describes the fields applied to a scenario after a render
// attempt. Status is always written; nil pointer fields are left untouched.
type ScenarioUpdates struct {
	Status domain.RenderStatus
	// Dataset, when provided, replaces the stored dataset.
	Dataset *domain.Dataset
	// LastError, when provided, sets the last error text. An empty string
	// clears it.
	LastError *string
}

// UserScenarios is a page of a user's scenarios, newest first.
type UserScenarios struct {
	Scenarios []domain.Scenario
	// NextCursor is the created_at value to pass to fetch the next page. It is
	// nil on the last page.
	NextCursor *time.Time
}

// ScenarioStorage defines persistence operations for scenarios. Soft-deleted
// scenarios are invisible to every read and update.
type ScenarioStorage interface {
	// StoreScenario inserts a scenario and returns it as stored, including
	// generated fields.
	StoreScenario(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error)
	// UpdateScenarioByID applies updates to a scenario, increments its
	// attempts and returns the updated row, or nil when it does not exist.
	UpdateScenarioByID(ctx context.Context, ID domain.ScenarioID, updates ScenarioUpdates) (*domain.Scenario, error)
	// DeleteScenario soft-deletes a user's scenario and returns it, or nil if
	// it was not found.
	DeleteScenario(ctx context.Context, userID domain.UserID, ID domain.ScenarioID) (*domain.Scenario, error)
	// UserScenarios returns up to limit scenarios of a user created before
	// cursor (zero means no cursor). A non-empty kind filters the results.
	UserScenarios(ctx context.Context,
		userID domain.UserID,
		kind domain.ScenarioKind,
		cursor time.Time,
		limit uint) (UserScenarios, error)
	// UserScenarioByID fetches a user's scenario, or nil when not found.
	UserScenarioByID(ctx context.Context, userID domain.UserID, ID domain.ScenarioID) (*domain.Scenario, error)
	// ScenarioByID fetches a scenario regardless of its owner, or nil when not
	// found. It is meant for background jobs that only carry the ID.
	ScenarioByID(ctx context.Context, ID domain.ScenarioID) (*domain.Scenario, error)
}
