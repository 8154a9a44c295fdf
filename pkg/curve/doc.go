// Package curve is the computation core of curvelab. It samples
// production-possibility frontiers, evaluates and classifies points against
// them, computes tangent slopes and opportunity costs, and solves linear
// supply/demand markets.
//
// Everything in this package is a pure function of its arguments. Results
// can be memoized on their input tuple; Cache does this for frontier
// sampling, which is the only operation whose cost grows with its input.
//
// The frontier family is
//
//	y(x) = EfficiencyY * sqrt(max(0, Resource - (x/EfficiencyX)^2))
//
// and market curves are straight lines price = Slope*quantity + Intercept.
package curve
