package curve_test

import (
	"curvelab/pkg/curve"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// paramGrid covers the slider ranges of the frontier pages, including odd
// values whose square roots are not exact.
func paramGrid() []curve.Params {
	var out []curve.Params
	for _, l := range []float64{1, 2, 3, 7, 20, 33, 40} {
		for _, ex := range []float64{1, 3, 10, 17, 20} {
			for _, ey := range []float64{1, 7, 10, 20} {
				out = append(out, curve.Params{Resource: l, EfficiencyX: ex, EfficiencyY: ey})
			}
		}
	}

	return append(out, curve.Params{Resource: 0.3, EfficiencyX: 1.7, EfficiencyY: 0.01})
}

func TestSampleFrontier_Endpoints(t *testing.T) {
	for _, p := range paramGrid() {
		for _, n := range []int{2, 3, 500} {
			c, err := curve.SampleFrontier(p, n)
			require.NoError(t, err)
			require.Len(t, c, n)

			require.Equal(t, curve.Point{X: 0, Y: p.EfficiencyY * math.Sqrt(p.Resource)}, c[0], "params %+v", p)
			require.Equal(t, curve.Point{X: p.EfficiencyX * math.Sqrt(p.Resource), Y: 0}, c[n-1], "params %+v", p)
		}
	}
}

func TestSampleFrontier_Monotonic(t *testing.T) {
	for _, p := range paramGrid() {
		c, err := curve.SampleFrontier(p, 500)
		require.NoError(t, err)

		for i := 1; i < len(c); i++ {
			require.Greater(t, c[i].X, c[i-1].X, "x must increase at %d for %+v", i, p)
			require.LessOrEqual(t, c[i].Y, c[i-1].Y, "y must not increase at %d for %+v", i, p)
		}
	}
}

func TestSampleFrontier_EvenSpacing(t *testing.T) {
	p := curve.Params{Resource: 16, EfficiencyX: 2, EfficiencyY: 3}
	c, err := curve.SampleFrontier(p, 5)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 2, 4, 6, 8}, c.Xs())
	require.InDelta(t, 3*math.Sqrt(16-1), c[1].Y, 1e-12)
	require.InDelta(t, 3*math.Sqrt(12), c[2].Y, 1e-12)
}

func TestSampleFrontier_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		p    curve.Params
		n    int
	}{
		{name: "zero resource", p: curve.Params{Resource: 0, EfficiencyX: 1, EfficiencyY: 1}, n: 10},
		{name: "negative efficiency x", p: curve.Params{Resource: 1, EfficiencyX: -1, EfficiencyY: 1}, n: 10},
		{name: "zero efficiency y", p: curve.Params{Resource: 1, EfficiencyX: 1, EfficiencyY: 0}, n: 10},
		{name: "NaN resource", p: curve.Params{Resource: math.NaN(), EfficiencyX: 1, EfficiencyY: 1}, n: 10},
		{name: "infinite efficiency", p: curve.Params{Resource: 1, EfficiencyX: math.Inf(1), EfficiencyY: 1}, n: 10},
		{name: "one point", p: curve.Params{Resource: 1, EfficiencyX: 1, EfficiencyY: 1}, n: 1},
		{name: "no points", p: curve.Params{Resource: 1, EfficiencyX: 1, EfficiencyY: 1}, n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := curve.SampleFrontier(tt.p, tt.n)
			require.Nil(t, c)
			require.ErrorIs(t, err, curve.ErrInvalidParameter)
		})
	}
}

func TestFrontierY_Roles(t *testing.T) {
	for _, p := range paramGrid() {
		require.Equal(t, p.EfficiencyY*math.Sqrt(p.Resource), curve.FrontierY(0, p))
		require.Equal(t, 0.0, curve.FrontierY(p.EfficiencyX*math.Sqrt(p.Resource), p))
	}
}

func TestFrontierY_ClampsOutsideDomain(t *testing.T) {
	p := curve.Params{Resource: 4, EfficiencyX: 1, EfficiencyY: 1}

	require.Equal(t, 0.0, curve.FrontierY(2.5, p))
	require.Equal(t, 0.0, curve.FrontierY(1e9, p))
	require.Equal(t, 0.0, curve.FrontierY(-3, p))
	// the curve is symmetric inside its domain
	require.Equal(t, curve.FrontierY(1, p), curve.FrontierY(-1, p))
	require.InDelta(t, math.Sqrt(3), curve.FrontierY(1, p), 1e-12)
}

func TestParams_Bounds(t *testing.T) {
	b := curve.Bounds{MaxResource: 40, MaxEfficiencyX: 20, MaxEfficiencyY: 20}
	box := b.Box()
	require.InDelta(t, 20*math.Sqrt(40), box.X, 1e-12)
	require.InDelta(t, 20*math.Sqrt(40), box.Y, 1e-12)

	require.True(t, b.Contains(curve.Params{Resource: 40, EfficiencyX: 20, EfficiencyY: 1}))
	require.False(t, b.Contains(curve.Params{Resource: 41, EfficiencyX: 20, EfficiencyY: 1}))
	require.True(t, curve.Bounds{}.Contains(curve.Params{Resource: 1e6, EfficiencyX: 1e6, EfficiencyY: 1e6}))
}
