package curve

import "curvelab/pkg/serrors"

// LinearCurve is a straight market curve: price = Slope*quantity + Intercept.
// Demand curves have a negative slope, supply curves a positive one.
type LinearCurve struct {
	Slope     float64 `json:"slope"     yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// PriceAt evaluates the curve at quantity q.
func (c LinearCurve) PriceAt(q float64) float64 {
	return c.Slope*q + c.Intercept
}

// Sample returns numPoints evenly spaced points of the curve over [from, to].
func (c LinearCurve) Sample(from, to float64, numPoints int) (Curve, error) {
	if numPoints < 2 {
		return nil, serrors.With(ErrInvalidParameter, "number of points must be at least 2, got %d", numPoints)
	}
	if !(to > from) {
		return nil, serrors.With(ErrInvalidParameter, "sample range [%g, %g] is empty", from, to)
	}

	last := numPoints - 1
	out := make(Curve, numPoints)
	for i := range out {
		q := from + (to-from)*float64(i)/float64(last)
		out[i] = Point{X: q, Y: c.PriceAt(q)}
	}
	out[last].X = to
	out[last].Y = c.PriceAt(to)

	return out, nil
}

// Equilibrium is the quantity and price at which demand meets supply.
type Equilibrium struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price"    yaml:"price"`
}

// Intersect solves demand = supply. It fails with ErrDegenerateMarket when
// the slopes are equal; any other combination has exactly one solution, even
// one with negative quantity or price. Keeping the equilibrium non-negative is
// the caller's input policy.
func Intersect(demand, supply LinearCurve) (Equilibrium, error) {
	if demand.Slope == supply.Slope {
		return Equilibrium{}, serrors.With(ErrDegenerateMarket,
			"demand and supply are parallel (slope %g), no unique equilibrium", demand.Slope)
	}

	q := (supply.Intercept - demand.Intercept) / (demand.Slope - supply.Slope)

	return Equilibrium{Quantity: q, Price: demand.PriceAt(q)}, nil
}
