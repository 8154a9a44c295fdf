package curve

import "math/rand"

// Scatter returns n points drawn uniformly from [0, box.X] x [0, box.Y].
// The same seed always yields the same points, so a classroom sees a stable
// cloud while the frontier moves underneath it.
func Scatter(seed int64, n int, box Point) []Point {
	if n <= 0 {
		return nil
	}

	//nolint: gosec
	rnd := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rnd.Float64() * box.X
	}

	out := make([]Point, n)
	for i := range out {
		out[i] = Point{X: xs[i], Y: rnd.Float64() * box.Y}
	}

	return out
}
