package curve

import (
	"curvelab/pkg/serrors"
	"math"
)

// Region is where a point lies relative to a frontier.
type Region int

const (
	// RegionFeasible is strictly below the frontier: producible with slack.
	RegionFeasible Region = iota + 1
	// RegionOnBoundary is on the frontier within the classification tolerance.
	RegionOnBoundary
	// RegionInfeasible is above the frontier: not producible.
	RegionInfeasible
)

func (r Region) String() string {
	switch r {
	case RegionFeasible:
		return "FEASIBLE"
	case RegionOnBoundary:
		return "ON_BOUNDARY"
	case RegionInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the region by name.
func (r Region) MarshalText() ([]byte, error) {
	if r < RegionFeasible || r > RegionInfeasible {
		return nil, serrors.With(ErrInvalidParameter, "unknown region %d", int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText decodes a region name produced by MarshalText.
func (r *Region) UnmarshalText(text []byte) error {
	for _, candidate := range []Region{RegionFeasible, RegionOnBoundary, RegionInfeasible} {
		if candidate.String() == string(text) {
			*r = candidate

			return nil
		}
	}

	return serrors.With(ErrInvalidParameter, "unknown region %q", text)
}

// Classification pairs a point with its region.
type Classification struct {
	Point  Point  `json:"point"`
	Region Region `json:"region"`
}

// Classify compares pt with the frontier value at pt.X. The boundary check
// runs first, so a point within tolerance of the curve is ON_BOUNDARY even if
// it is also below or above it. Tolerance is a vertical distance; 0 means
// exact equality and negative values are treated as 0.
func Classify(pt Point, p Params, tolerance float64) Region {
	threshold := FrontierY(pt.X, p)
	tolerance = math.Max(0, tolerance)

	switch {
	case math.Abs(pt.Y-threshold) <= tolerance:
		return RegionOnBoundary
	case pt.Y < threshold:
		return RegionFeasible
	default:
		return RegionInfeasible
	}
}

// ClassifyAll classifies every point with the same frontier and tolerance.
func ClassifyAll(points []Point, p Params, tolerance float64) []Classification {
	out := make([]Classification, len(points))
	for i, pt := range points {
		out[i] = Classification{Point: pt, Region: Classify(pt, p, tolerance)}
	}

	return out
}

// Count returns how many classifications fall into each region.
func Count(cs []Classification) map[Region]int {
	out := make(map[Region]int, 3)
	for _, c := range cs {
		out[c.Region]++
	}

	return out
}
