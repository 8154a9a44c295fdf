package curve

import (
	"curvelab/pkg/serrors"
	"math"
)

// SampleFrontier returns numPoints evenly spaced points of the frontier
// between (0, YMax) and (XMax, 0). Both endpoints are set exactly so that
// rounding in sqrt never leaves a gap at the axes.
func SampleFrontier(p Params, numPoints int) (Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if numPoints < 2 {
		return nil, serrors.With(ErrInvalidParameter, "number of points must be at least 2, got %d", numPoints)
	}

	xMax := p.XMax()
	last := numPoints - 1
	out := make(Curve, numPoints)
	for i := 1; i < last; i++ {
		x := xMax * float64(i) / float64(last)
		out[i] = Point{X: x, Y: FrontierY(x, p)}
	}
	out[0] = Point{X: 0, Y: p.YMax()}
	out[last] = Point{X: xMax, Y: 0}

	return out, nil
}

// FrontierY evaluates the frontier at x. It is defined for every real x: past
// the curve's domain the radicand is clamped to zero, so the frontier is flat
// at zero instead of undefined.
func FrontierY(x float64, p Params) float64 {
	if math.Abs(x) >= p.XMax() {
		return 0
	}

	return p.EfficiencyY * math.Sqrt(radicand(x, p))
}

func radicand(x float64, p Params) float64 {
	r := x / p.EfficiencyX

	return math.Max(0, p.Resource-r*r)
}
