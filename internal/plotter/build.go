package plotter

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"math"
)

// Names of the series in a rendered dataset.
const (
	SeriesFrontier      = "frontier"
	SeriesDemand        = "demand"
	SeriesSupply        = "supply"
	SeriesShiftedDemand = "shifted demand"
	SeriesShiftedSupply = "shifted supply"
	SeriesRelatedDemand = "related demand"
)

// Build validates s and computes its dataset. cache may be nil.
func Build(s domain.Scenario, opts Options, cache *curve.Cache) (*domain.Dataset, error) {
	if err := Validate(s, opts); err != nil {
		return nil, err
	}

	if s.Kind == domain.ScenarioKindFrontier {
		return buildFrontier(*s.Frontier, opts, cache)
	}

	return buildMarket(*s.Market, opts)
}

func buildFrontier(spec domain.FrontierSpec, opts Options, cache *curve.Cache) (*domain.Dataset, error) {
	points := spec.Points
	if points == 0 {
		points = opts.SamplePoints
	}

	frontier, err := sampleFrontier(cache, spec.Params, points)
	if err != nil {
		return nil, err
	}

	box := axisBox(spec.Params, opts)
	ds := &domain.Dataset{
		Series: []domain.Series{{Name: SeriesFrontier, Points: frontier}},
		Box:    &box,
	}

	tolerance := opts.Tolerance
	if spec.Tolerance != nil {
		tolerance = *spec.Tolerance
	}
	switch {
	case len(spec.Samples) > 0:
		ds.Classified = curve.ClassifyAll(spec.Samples, spec.Params, tolerance)
	case spec.Scatter:
		samples := curve.Scatter(opts.ScatterSeed, opts.ScatterPoints, box)
		ds.Classified = curve.ClassifyAll(samples, spec.Params, tolerance)
	}

	if spec.ProbeX != nil {
		if ds.Probe, err = buildProbe(spec.Params, *spec.ProbeX, opts); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// buildProbe evaluates the frontier at x and samples a tangent centred on x
// whose half span is TangentSpanRatio of the global x range. x is clamped
// into [0, XMax] first, the range of the probe slider.
func buildProbe(p curve.Params, x float64, opts Options) (*domain.Probe, error) {
	x = math.Min(math.Max(x, 0), p.XMax())
	halfSpan := opts.TangentSpanRatio * axisBox(p, opts).X
	tangent, err := curve.CenteredTangent(x, p, halfSpan, opts.TangentPoints)
	if err != nil {
		return nil, err
	}

	return &domain.Probe{
		X:               x,
		Y:               curve.FrontierY(x, p),
		Slope:           curve.TangentSlope(x, p),
		OpportunityCost: curve.OpportunityCost(x, p),
		Tangent:         tangent,
	}, nil
}

func buildMarket(spec domain.MarketSpec, opts Options) (*domain.Dataset, error) {
	spec = NormalizeMarket(spec, opts)

	quantityMax := spec.QuantityMax
	if quantityMax == 0 {
		quantityMax = opts.QuantityMax
	}
	points := spec.Points
	if points == 0 {
		points = opts.MarketPoints
	}

	ds := &domain.Dataset{}
	addSeries := func(name string, c curve.LinearCurve) error {
		sampled, err := c.Sample(0, quantityMax, points)
		if err != nil {
			return err
		}
		ds.Series = append(ds.Series, domain.Series{Name: name, Points: sampled})

		return nil
	}

	demand, supply := spec.Demand, spec.Supply
	if err := addSeries(SeriesDemand, demand); err != nil {
		return nil, err
	}
	if err := addSeries(SeriesSupply, supply); err != nil {
		return nil, err
	}
	if spec.DemandShift != 0 {
		demand = curve.Shift(demand, spec.DemandShift)
		if err := addSeries(SeriesShiftedDemand, demand); err != nil {
			return nil, err
		}
	}
	if spec.SupplyShift != 0 {
		supply = curve.Shift(supply, spec.SupplyShift)
		if err := addSeries(SeriesShiftedSupply, supply); err != nil {
			return nil, err
		}
	}

	eq, err := curve.Intersect(demand, supply)
	if err != nil {
		return nil, err
	}
	ds.Equilibrium = &eq

	if m := spec.Move; m != nil {
		movement := curve.MoveAlong(demand, m.Quantity, m.DeltaQuantity)
		ds.Movement = &movement

		if m.Relation != "" {
			// the related good starts from the same base demand
			shift := curve.RelatedShift(m.Relation, movement.DeltaPrice)
			related := curve.Shift(spec.Demand, shift)
			ds.Related = &domain.RelatedMarket{
				Relation: m.Relation,
				Shift:    shift,
				Demand:   related,
				Point:    curve.Point{X: m.Quantity, Y: related.PriceAt(m.Quantity)},
			}
			if err := addSeries(SeriesRelatedDemand, related); err != nil {
				return nil, err
			}
		}
	}

	return ds, nil
}

// axisBox is the global box of opts.Bounds, or the frontier's own box when
// the bounds are unlimited.
func axisBox(p curve.Params, opts Options) curve.Point {
	box := opts.Bounds.Box()
	if box.X > 0 && box.Y > 0 {
		return box
	}

	return curve.Point{X: p.XMax(), Y: p.YMax()}
}

func sampleFrontier(cache *curve.Cache, p curve.Params, points int) (curve.Curve, error) {
	if cache != nil {
		return cache.SampleFrontier(p, points)
	}

	return curve.SampleFrontier(p, points)
}
