package curve

// Shift moves the whole curve vertically by delta. This is how every shock is
// modelled: a change in the relationship itself, not in where it is read.
// Shift(Shift(c, d), -d) restores c exactly only when c.Intercept+d is
// representable; otherwise the intercept is off by a rounding error.
func Shift(c LinearCurve, delta float64) LinearCurve {
	return LinearCurve{Slope: c.Slope, Intercept: c.Intercept + delta}
}

// Movement describes reading the same curve at a different quantity.
type Movement struct {
	From          Point   `json:"from"`
	To            Point   `json:"to"`
	DeltaQuantity float64 `json:"deltaQuantity"`
	DeltaPrice    float64 `json:"deltaPrice"`
}

// MoveAlong evaluates c at quantity and at quantity+deltaQuantity. The curve
// itself does not change; compare Shift.
func MoveAlong(c LinearCurve, quantity, deltaQuantity float64) Movement {
	from := Point{X: quantity, Y: c.PriceAt(quantity)}
	to := Point{X: quantity + deltaQuantity, Y: c.PriceAt(quantity + deltaQuantity)}

	return Movement{
		From:          from,
		To:            to,
		DeltaQuantity: deltaQuantity,
		DeltaPrice:    to.Y - from.Y,
	}
}

// Relation is how the demand for one good reacts to the price of another.
type Relation string

const (
	// Substitutes: a higher price of one good raises demand for the other.
	Substitutes Relation = "SUBSTITUTES"
	// Complements: a higher price of one good lowers demand for the other.
	Complements Relation = "COMPLEMENTS"
)

// Valid reports whether r is a known relation.
func (r Relation) Valid() bool {
	return r == Substitutes || r == Complements
}

// RelatedShift is the vertical shift of a related good's demand curve when
// this good's price changes by priceChange: the same sign for substitutes,
// the opposite sign for complements.
func RelatedShift(r Relation, priceChange float64) float64 {
	if r == Complements {
		return -priceChange
	}

	return priceChange
}
