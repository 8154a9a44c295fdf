package curve

import (
	"curvelab/pkg/serrors"
	"math"
)

// TangentSlope is dy/dx of the frontier at x:
//
//	-(EfficiencyY * x) / (EfficiencyX^2 * sqrt(Resource - (x/EfficiencyX)^2))
//
// At and beyond the end of the curve's domain the true derivative is
// unbounded; TangentSlope returns 0 there so that it stays total.
func TangentSlope(x float64, p Params) float64 {
	if x == 0 || math.Abs(x) >= p.XMax() {
		return 0
	}

	r := radicand(x, p)
	if r <= 0 {
		return 0
	}

	return -(p.EfficiencyY * x) / (p.EfficiencyX * p.EfficiencyX * math.Sqrt(r))
}

// OpportunityCost is how many units of Y must be given up for one more unit
// of X at x, i.e. the magnitude of the tangent slope.
func OpportunityCost(x float64, p Params) float64 {
	return math.Abs(TangentSlope(x, p))
}

// TangentAt returns the tangent line touching the frontier at x.
func TangentAt(x float64, p Params) LinearCurve {
	slope := TangentSlope(x, p)

	return LinearCurve{Slope: slope, Intercept: FrontierY(x, p) - slope*x}
}

// TangentSegment samples the tangent line at x over [from, to].
func TangentSegment(x float64, p Params, from, to float64, numPoints int) (Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return TangentAt(x, p).Sample(from, to, numPoints)
}

// CenteredTangent samples the tangent line at x over [x-halfSpan, x+halfSpan].
func CenteredTangent(x float64, p Params, halfSpan float64, numPoints int) (Curve, error) {
	if !(halfSpan > 0) {
		return nil, serrors.With(ErrInvalidParameter, "tangent half span must be positive, got %g", halfSpan)
	}

	return TangentSegment(x, p, x-halfSpan, x+halfSpan, numPoints)
}
