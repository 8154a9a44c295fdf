package domain

import (
	"curvelab/pkg/curve"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScenarioID uniquely identifies a scenario.
type ScenarioID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id ScenarioID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id ScenarioID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from any form accepted by uuid.Parse.
func (id *ScenarioID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// ParseScenarioID parses s as a scenario ID.
func ParseScenarioID(s string) (ScenarioID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ScenarioID{}, fmt.Errorf("could not parse scenario ID: %w", err)
	}

	return ScenarioID(id), nil
}

// ScenarioKind selects which family of curves a scenario describes.
type ScenarioKind string

const (
	// ScenarioKindFrontier is a production-possibility frontier scenario.
	ScenarioKindFrontier ScenarioKind = "FRONTIER"
	// ScenarioKindMarket is a linear supply/demand scenario.
	ScenarioKindMarket ScenarioKind = "MARKET"
)

// RenderStatus is the lifecycle state of a scenario's dataset.
type RenderStatus string

const (
	// RenderStatusPending means the dataset has not been computed yet.
	RenderStatusPending RenderStatus = "PENDING"
	// RenderStatusCompleted means Dataset holds the rendered curves.
	RenderStatusCompleted RenderStatus = "COMPLETED"
	// RenderStatusFailed means rendering was rejected; see LastError.
	RenderStatusFailed RenderStatus = "FAILED"
)

// FrontierSpec describes a frontier scenario.
type FrontierSpec struct {
	Params curve.Params `json:"params" yaml:"params"`
	// Points is the number of frontier samples; zero uses the configured default.
	Points int `json:"points,omitempty" yaml:"points,omitempty"`
	// Tolerance is the on-boundary distance used to classify samples; nil uses
	// the configured default and 0 means exact equality.
	Tolerance *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	// ProbeX, when set, adds the frontier value, tangent and opportunity cost at ProbeX.
	ProbeX *float64 `json:"probeX,omitempty" yaml:"probeX,omitempty"`
	// Samples are caller-chosen points to classify. When empty and Scatter is
	// set, a seeded scatter over the global box is classified instead.
	Samples []curve.Point `json:"samples,omitempty" yaml:"samples,omitempty"`
	Scatter bool          `json:"scatter,omitempty" yaml:"scatter,omitempty"`
}

// MarketSpec describes a supply/demand scenario.
type MarketSpec struct {
	Demand curve.LinearCurve `json:"demand" yaml:"demand"`
	Supply curve.LinearCurve `json:"supply" yaml:"supply"`
	// DemandShift and SupplyShift are vertical shocks applied to the curves.
	DemandShift float64 `json:"demandShift,omitempty" yaml:"demandShift,omitempty"`
	SupplyShift float64 `json:"supplyShift,omitempty" yaml:"supplyShift,omitempty"`
	// QuantityMax is the right end of the plotted quantity range; zero uses the default.
	QuantityMax float64 `json:"quantityMax,omitempty" yaml:"quantityMax,omitempty"`
	Points      int     `json:"points,omitempty"      yaml:"points,omitempty"`
	// Move, when set, moves along the (shifted) demand curve and, if Relation
	// is set, shifts a related good's demand accordingly.
	Move *MoveSpec `json:"move,omitempty" yaml:"move,omitempty"`
}

// MoveSpec is a movement along the demand curve starting at Quantity.
type MoveSpec struct {
	Quantity      float64        `json:"quantity"           yaml:"quantity"`
	DeltaQuantity float64        `json:"deltaQuantity"      yaml:"deltaQuantity"`
	Relation      curve.Relation `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// Series is one named polyline of a dataset.
type Series struct {
	Name   string      `json:"name"`
	Points curve.Curve `json:"points"`
}

// Probe is the local analysis of a frontier at a single x.
type Probe struct {
	X               float64     `json:"x"`
	Y               float64     `json:"y"`
	Slope           float64     `json:"slope"`
	OpportunityCost float64     `json:"opportunityCost"`
	Tangent         curve.Curve `json:"tangent"`
}

// RelatedMarket is the effect of a movement on a related good's demand.
type RelatedMarket struct {
	Relation curve.Relation    `json:"relation"`
	Shift    float64           `json:"shift"`
	Demand   curve.LinearCurve `json:"demand"`
	Point    curve.Point       `json:"point"`
}

// Dataset is everything a chart needs to draw a scenario.
type Dataset struct {
	Series      []Series               `json:"series"`
	Box         *curve.Point           `json:"box,omitempty"`
	Probe       *Probe                 `json:"probe,omitempty"`
	Classified  []curve.Classification `json:"classified,omitempty"`
	Equilibrium *curve.Equilibrium     `json:"equilibrium,omitempty"`
	Movement    *curve.Movement        `json:"movement,omitempty"`
	Related     *RelatedMarket         `json:"related,omitempty"`
}

// Scenario is a named, saved set of curve parameters owned by a user,
// together with its rendered dataset once the render job has run.
type Scenario struct {
	ID     ScenarioID   `json:"id"`
	UserID UserID       `json:"userId"`
	Name   string       `json:"name"`
	Kind   ScenarioKind `json:"kind"`

	// Exactly one of Frontier and Market is set, matching Kind.
	Frontier *FrontierSpec `json:"frontier,omitempty"`
	Market   *MarketSpec   `json:"market,omitempty"`

	Status  RenderStatus `json:"status"`
	Dataset *Dataset     `json:"dataset,omitempty"`

	// Attempts is the number of render attempts made so far.
	Attempts  uint   `json:"attempts"`
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
