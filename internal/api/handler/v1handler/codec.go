package v1handler

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encoding.

func encodePoint(e *jx.Encoder, p curve.Point) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("x", func(e *jx.Encoder) { e.Float64(p.X) })
		e.Field("y", func(e *jx.Encoder) { e.Float64(p.Y) })
	})
}

func encodeCurve(e *jx.Encoder, c curve.Curve) {
	e.Arr(func(e *jx.Encoder) {
		for _, p := range c {
			encodePoint(e, p)
		}
	})
}

func encodeParams(e *jx.Encoder, p curve.Params) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("resource", func(e *jx.Encoder) { e.Float64(p.Resource) })
		e.Field("efficiencyX", func(e *jx.Encoder) { e.Float64(p.EfficiencyX) })
		e.Field("efficiencyY", func(e *jx.Encoder) { e.Float64(p.EfficiencyY) })
	})
}

func encodeLinear(e *jx.Encoder, c curve.LinearCurve) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("slope", func(e *jx.Encoder) { e.Float64(c.Slope) })
		e.Field("intercept", func(e *jx.Encoder) { e.Float64(c.Intercept) })
	})
}

func encodeClassified(e *jx.Encoder, cs []curve.Classification) {
	e.Arr(func(e *jx.Encoder) {
		for _, c := range cs {
			e.Obj(func(e *jx.Encoder) {
				e.Field("point", func(e *jx.Encoder) { encodePoint(e, c.Point) })
				e.Field("region", func(e *jx.Encoder) { e.Str(c.Region.String()) })
			})
		}
	})
}

func encodeProbe(e *jx.Encoder, p *domain.Probe) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("x", func(e *jx.Encoder) { e.Float64(p.X) })
		e.Field("y", func(e *jx.Encoder) { e.Float64(p.Y) })
		e.Field("slope", func(e *jx.Encoder) { e.Float64(p.Slope) })
		e.Field("opportunityCost", func(e *jx.Encoder) { e.Float64(p.OpportunityCost) })
		e.Field("tangent", func(e *jx.Encoder) { encodeCurve(e, p.Tangent) })
	})
}

func encodeDataset(e *jx.Encoder, d *domain.Dataset) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("series", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range d.Series {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
						e.Field("points", func(e *jx.Encoder) { encodeCurve(e, s.Points) })
					})
				}
			})
		})
		if d.Box != nil {
			e.Field("box", func(e *jx.Encoder) { encodePoint(e, *d.Box) })
		}
		if d.Probe != nil {
			e.Field("probe", func(e *jx.Encoder) { encodeProbe(e, d.Probe) })
		}
		if len(d.Classified) > 0 {
			e.Field("classified", func(e *jx.Encoder) { encodeClassified(e, d.Classified) })
		}
		if eq := d.Equilibrium; eq != nil {
			e.Field("equilibrium", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("quantity", func(e *jx.Encoder) { e.Float64(eq.Quantity) })
					e.Field("price", func(e *jx.Encoder) { e.Float64(eq.Price) })
				})
			})
		}
		if m := d.Movement; m != nil {
			e.Field("movement", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("from", func(e *jx.Encoder) { encodePoint(e, m.From) })
					e.Field("to", func(e *jx.Encoder) { encodePoint(e, m.To) })
					e.Field("deltaQuantity", func(e *jx.Encoder) { e.Float64(m.DeltaQuantity) })
					e.Field("deltaPrice", func(e *jx.Encoder) { e.Float64(m.DeltaPrice) })
				})
			})
		}
		if r := d.Related; r != nil {
			e.Field("related", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("relation", func(e *jx.Encoder) { e.Str(string(r.Relation)) })
					e.Field("shift", func(e *jx.Encoder) { e.Float64(r.Shift) })
					e.Field("demand", func(e *jx.Encoder) { encodeLinear(e, r.Demand) })
					e.Field("point", func(e *jx.Encoder) { encodePoint(e, r.Point) })
				})
			})
		}
	})
}

func encodeFrontierSpec(e *jx.Encoder, s *domain.FrontierSpec) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("params", func(e *jx.Encoder) { encodeParams(e, s.Params) })
		if s.Points != 0 {
			e.Field("points", func(e *jx.Encoder) { e.Int(s.Points) })
		}
		if s.Tolerance != nil {
			e.Field("tolerance", func(e *jx.Encoder) { e.Float64(*s.Tolerance) })
		}
		if s.ProbeX != nil {
			e.Field("probeX", func(e *jx.Encoder) { e.Float64(*s.ProbeX) })
		}
		if len(s.Samples) > 0 {
			e.Field("samples", func(e *jx.Encoder) { encodeCurve(e, s.Samples) })
		}
		if s.Scatter {
			e.Field("scatter", func(e *jx.Encoder) { e.Bool(true) })
		}
	})
}

func encodeMarketSpec(e *jx.Encoder, s *domain.MarketSpec) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("demand", func(e *jx.Encoder) { encodeLinear(e, s.Demand) })
		e.Field("supply", func(e *jx.Encoder) { encodeLinear(e, s.Supply) })
		if s.DemandShift != 0 {
			e.Field("demandShift", func(e *jx.Encoder) { e.Float64(s.DemandShift) })
		}
		if s.SupplyShift != 0 {
			e.Field("supplyShift", func(e *jx.Encoder) { e.Float64(s.SupplyShift) })
		}
		if s.QuantityMax != 0 {
			e.Field("quantityMax", func(e *jx.Encoder) { e.Float64(s.QuantityMax) })
		}
		if s.Points != 0 {
			e.Field("points", func(e *jx.Encoder) { e.Int(s.Points) })
		}
		if m := s.Move; m != nil {
			e.Field("move", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("quantity", func(e *jx.Encoder) { e.Float64(m.Quantity) })
					e.Field("deltaQuantity", func(e *jx.Encoder) { e.Float64(m.DeltaQuantity) })
					if m.Relation != "" {
						e.Field("relation", func(e *jx.Encoder) { e.Str(string(m.Relation)) })
					}
				})
			})
		}
	})
}

func encodeScenario(e *jx.Encoder, s *domain.Scenario) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(s.Kind)) })
		if s.Frontier != nil {
			e.Field("frontier", func(e *jx.Encoder) { encodeFrontierSpec(e, s.Frontier) })
		}
		if s.Market != nil {
			e.Field("market", func(e *jx.Encoder) { encodeMarketSpec(e, s.Market) })
		}
		e.Field("status", func(e *jx.Encoder) { e.Str(string(s.Status)) })
		if s.Status == domain.RenderStatusFailed && s.LastError != "" {
			e.Field("error", func(e *jx.Encoder) { e.Str(s.LastError) })
		}
		if s.Dataset != nil {
			e.Field("dataset", func(e *jx.Encoder) { encodeDataset(e, s.Dataset) })
		}
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(s.Attempts) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(s.CreatedAt.UTC().Format(time.RFC3339Nano)) })
		e.Field("updatedAt", func(e *jx.Encoder) { e.Str(s.UpdatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}

// Decoding.

// maxBodyBytes bounds request bodies; samples are the largest payload.
const maxBodyBytes = 1 << 20

func decodeBody(r io.Reader, f func(d *jx.Decoder) error) error {
	d := jx.Decode(io.LimitReader(r, maxBodyBytes), 4096)
	if err := f(d); err != nil {
		return errors.Wrap(err, "decode body")
	}

	return nil
}

func decodeFloatPtr(d *jx.Decoder) (*float64, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	v, err := d.Float64()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func decodePoint(d *jx.Decoder) (curve.Point, error) {
	var p curve.Point
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "x":
			p.X, err = d.Float64()
		case "y":
			p.Y, err = d.Float64()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return p, err
}

func decodeCurve(d *jx.Decoder) (curve.Curve, error) {
	var c curve.Curve
	err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodePoint(d)
		if err != nil {
			return err
		}
		c = append(c, p)

		return nil
	})

	return c, err
}

func decodeParams(d *jx.Decoder) (curve.Params, error) {
	var p curve.Params
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "resource":
			p.Resource, err = d.Float64()
		case "efficiencyX":
			p.EfficiencyX, err = d.Float64()
		case "efficiencyY":
			p.EfficiencyY, err = d.Float64()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return p, err
}

func decodeLinear(d *jx.Decoder) (curve.LinearCurve, error) {
	var c curve.LinearCurve
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "slope":
			c.Slope, err = d.Float64()
		case "intercept":
			c.Intercept, err = d.Float64()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return c, err
}

func decodeFrontierSpec(d *jx.Decoder) (domain.FrontierSpec, error) {
	var s domain.FrontierSpec
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "params":
			s.Params, err = decodeParams(d)
		case "points":
			s.Points, err = d.Int()
		case "tolerance":
			s.Tolerance, err = decodeFloatPtr(d)
		case "probeX":
			s.ProbeX, err = decodeFloatPtr(d)
		case "samples":
			s.Samples, err = decodeCurve(d)
		case "scatter":
			s.Scatter, err = d.Bool()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return s, err
}

func decodeMoveSpec(d *jx.Decoder) (*domain.MoveSpec, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var m domain.MoveSpec
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "quantity":
			m.Quantity, err = d.Float64()
		case "deltaQuantity":
			m.DeltaQuantity, err = d.Float64()
		case "relation":
			var rel string
			rel, err = d.Str()
			m.Relation = curve.Relation(rel)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return &m, err
}

func decodeMarketSpec(d *jx.Decoder) (domain.MarketSpec, error) {
	var s domain.MarketSpec
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "demand":
			s.Demand, err = decodeLinear(d)
		case "supply":
			s.Supply, err = decodeLinear(d)
		case "demandShift":
			s.DemandShift, err = d.Float64()
		case "supplyShift":
			s.SupplyShift, err = d.Float64()
		case "quantityMax":
			s.QuantityMax, err = d.Float64()
		case "points":
			s.Points, err = d.Int()
		case "move":
			s.Move, err = decodeMoveSpec(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return s, err
}

// decodeScenario decodes a scenario creation request. The kind is inferred
// from whichever of frontier or market is present when omitted.
func decodeScenario(d *jx.Decoder) (domain.Scenario, error) {
	var s domain.Scenario
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			s.Name, err = d.Str()
		case "kind":
			var kind string
			kind, err = d.Str()
			s.Kind = domain.ScenarioKind(kind)
		case "frontier":
			var spec domain.FrontierSpec
			spec, err = decodeFrontierSpec(d)
			s.Frontier = &spec
		case "market":
			var spec domain.MarketSpec
			spec, err = decodeMarketSpec(d)
			s.Market = &spec
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})
	if err != nil {
		return s, err
	}

	if s.Kind == "" {
		switch {
		case s.Frontier != nil && s.Market == nil:
			s.Kind = domain.ScenarioKindFrontier
		case s.Market != nil && s.Frontier == nil:
			s.Kind = domain.ScenarioKindMarket
		}
	}

	return s, nil
}
