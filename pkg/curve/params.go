package curve

import (
	"curvelab/pkg/serrors"
	"math"
)

// Params are the economic inputs of a frontier: the resource endowment
// (labour) and how efficiently it converts into each of the two goods.
type Params struct {
	Resource    float64 `json:"resource"    yaml:"resource"`
	EfficiencyX float64 `json:"efficiencyX" yaml:"efficiencyX"`
	EfficiencyY float64 `json:"efficiencyY" yaml:"efficiencyY"`
}

// Validate reports an ErrInvalidParameter error unless every field is
// strictly positive and finite.
func (p Params) Validate() error {
	if err := positive("resource", p.Resource); err != nil {
		return err
	}
	if err := positive("efficiencyX", p.EfficiencyX); err != nil {
		return err
	}

	return positive("efficiencyY", p.EfficiencyY)
}

// XMax is the frontier's x-intercept: everything spent on good X.
func (p Params) XMax() float64 { return p.EfficiencyX * math.Sqrt(p.Resource) }

// YMax is the frontier's y-intercept: everything spent on good Y.
func (p Params) YMax() float64 { return p.EfficiencyY * math.Sqrt(p.Resource) }

func positive(name string, v float64) error {
	// !(v > 0) also rejects NaN
	if !(v > 0) || math.IsInf(v, 0) {
		return serrors.With(ErrInvalidParameter, "%s must be a positive finite number, got %g", name, v)
	}

	return nil
}

// Point is a single (x, y) pair; for market curves x is quantity and y price.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Curve is an ordered sequence of points.
type Curve []Point

// Xs returns the x coordinates of the curve.
func (c Curve) Xs() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.X
	}

	return out
}

// Ys returns the y coordinates of the curve.
func (c Curve) Ys() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Y
	}

	return out
}

// Bounds are the largest parameters a caller accepts, e.g. slider maxima.
type Bounds struct {
	MaxResource    float64
	MaxEfficiencyX float64
	MaxEfficiencyY float64
}

// Box is the global plotting area: the frontier of the largest allowed
// parameters. Every frontier within Bounds fits inside it, which keeps chart
// axes fixed while parameters change.
func (b Bounds) Box() Point {
	return Point{
		X: b.MaxEfficiencyX * math.Sqrt(b.MaxResource),
		Y: b.MaxEfficiencyY * math.Sqrt(b.MaxResource),
	}
}

// Contains reports whether p lies within the bounds. Zero bounds are
// unlimited.
func (b Bounds) Contains(p Params) bool {
	within := func(v, limit float64) bool { return limit <= 0 || v <= limit }

	return within(p.Resource, b.MaxResource) &&
		within(p.EfficiencyX, b.MaxEfficiencyX) &&
		within(p.EfficiencyY, b.MaxEfficiencyY)
}
