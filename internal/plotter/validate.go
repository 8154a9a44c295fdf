package plotter

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"math"
)

// Validate checks a scenario against the caller-side policies in opts:
// slider bounds, point-count caps and finiteness of every number. It does
// not apply the equilibrium clamp; see NormalizeMarket.
func Validate(s domain.Scenario, opts Options) error {
	switch s.Kind {
	case domain.ScenarioKindFrontier:
		if s.Frontier == nil || s.Market != nil {
			return serrors.With(serrors.ErrBadRequest, "a FRONTIER scenario needs exactly a frontier spec")
		}

		return ValidateFrontier(*s.Frontier, opts)
	case domain.ScenarioKindMarket:
		if s.Market == nil || s.Frontier != nil {
			return serrors.With(serrors.ErrBadRequest, "a MARKET scenario needs exactly a market spec")
		}

		return ValidateMarket(*s.Market, opts)
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown scenario kind %q", s.Kind)
	}
}

// ValidateFrontier validates a frontier spec.
func ValidateFrontier(spec domain.FrontierSpec, opts Options) error {
	if err := ValidateParams(spec.Params, opts); err != nil {
		return err
	}
	if err := validatePoints("points", spec.Points, opts); err != nil {
		return err
	}
	if spec.Tolerance != nil {
		if err := finite("tolerance", *spec.Tolerance); err != nil {
			return err
		}
	}
	if spec.ProbeX != nil {
		if err := finite("probeX", *spec.ProbeX); err != nil {
			return err
		}
	}

	return validateSamples(spec.Samples, opts)
}

// ValidateParams checks p is positive, finite and within opts.Bounds.
func ValidateParams(p curve.Params, opts Options) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !opts.Bounds.Contains(p) {
		return serrors.With(curve.ErrInvalidParameter,
			"parameters exceed bounds: resource <= %g, efficiencyX <= %g, efficiencyY <= %g",
			opts.Bounds.MaxResource, opts.Bounds.MaxEfficiencyX, opts.Bounds.MaxEfficiencyY)
	}

	return nil
}

func validateSamples(samples []curve.Point, opts Options) error {
	if opts.MaxSamplePoints > 0 && len(samples) > opts.MaxSamplePoints {
		return serrors.With(curve.ErrInvalidParameter, "at most %d samples are allowed", opts.MaxSamplePoints)
	}
	for i, pt := range samples {
		if err := finitePoint(i, pt); err != nil {
			return err
		}
	}

	return nil
}

// ValidateMarket validates a market spec. Parallel demand and supply are
// reported as curve.ErrDegenerateMarket.
func ValidateMarket(spec domain.MarketSpec, opts Options) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"demand.slope", spec.Demand.Slope},
		{"demand.intercept", spec.Demand.Intercept},
		{"supply.slope", spec.Supply.Slope},
		{"supply.intercept", spec.Supply.Intercept},
		{"demandShift", spec.DemandShift},
		{"supplyShift", spec.SupplyShift},
		{"quantityMax", spec.QuantityMax},
	} {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if spec.Demand.Slope == spec.Supply.Slope {
		return serrors.With(curve.ErrDegenerateMarket, "demand and supply slopes are both %g", spec.Demand.Slope)
	}
	if spec.QuantityMax < 0 {
		return serrors.With(curve.ErrInvalidParameter, "quantityMax must not be negative, got %g", spec.QuantityMax)
	}
	if err := validatePoints("points", spec.Points, opts); err != nil {
		return err
	}

	if m := spec.Move; m != nil {
		if err := finite("move.quantity", m.Quantity); err != nil {
			return err
		}
		if err := finite("move.deltaQuantity", m.DeltaQuantity); err != nil {
			return err
		}
		if m.Relation != "" && !m.Relation.Valid() {
			return serrors.With(curve.ErrInvalidParameter,
				"move.relation must be %s or %s, got %q", curve.Substitutes, curve.Complements, m.Relation)
		}
	}

	return nil
}

// NormalizeMarket applies the non-negative equilibrium policy: unless
// opts.AllowNegativeEquilibrium is set, a demand intercept below the supply
// intercept is raised to it, the way the classroom sliders are clamped.
func NormalizeMarket(spec domain.MarketSpec, opts Options) domain.MarketSpec {
	if !opts.AllowNegativeEquilibrium && spec.Demand.Intercept < spec.Supply.Intercept {
		spec.Demand.Intercept = spec.Supply.Intercept
	}

	return spec
}

// validatePoints accepts 0 (use the default) or a count in [2, MaxSamplePoints].
func validatePoints(name string, n int, opts Options) error {
	switch {
	case n == 0:
		return nil
	case n < 2:
		return serrors.With(curve.ErrInvalidParameter, "%s must be >= 2, got %d", name, n)
	case opts.MaxSamplePoints > 0 && n > opts.MaxSamplePoints:
		return serrors.With(curve.ErrInvalidParameter, "%s must be <= %d, got %d", name, opts.MaxSamplePoints, n)
	default:
		return nil
	}
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return serrors.With(curve.ErrInvalidParameter, "%s must be a finite number", name)
	}

	return nil
}

func finitePoint(i int, pt curve.Point) error {
	if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
		return serrors.With(curve.ErrInvalidParameter, "sample %d must have finite coordinates", i)
	}

	return nil
}
