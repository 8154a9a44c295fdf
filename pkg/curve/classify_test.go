package curve_test

import (
	"curvelab/pkg/curve"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_Tolerance(t *testing.T) {
	p := curve.Params{Resource: 20, EfficiencyX: 10, EfficiencyY: 10}
	x := 12.5
	onCurve := curve.FrontierY(x, p)

	tests := []struct {
		name      string
		y         float64
		tolerance float64
		want      curve.Region
	}{
		{name: "exactly on curve", y: onCurve, tolerance: 2, want: curve.RegionOnBoundary},
		{name: "1.9 below", y: onCurve - 1.9, tolerance: 2, want: curve.RegionOnBoundary},
		{name: "2.1 below", y: onCurve - 2.1, tolerance: 2, want: curve.RegionFeasible},
		{name: "1.9 above", y: onCurve + 1.9, tolerance: 2, want: curve.RegionOnBoundary},
		{name: "2.1 above", y: onCurve + 2.1, tolerance: 2, want: curve.RegionInfeasible},
		{name: "exact equality on curve", y: onCurve, tolerance: 0, want: curve.RegionOnBoundary},
		{name: "exact equality below", y: onCurve - 1e-9, tolerance: 0, want: curve.RegionFeasible},
		{name: "negative tolerance acts as zero", y: onCurve, tolerance: -1, want: curve.RegionOnBoundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, curve.Classify(curve.Point{X: x, Y: tt.y}, p, tt.tolerance))
		})
	}
}

func TestClassify_OutsideDomain(t *testing.T) {
	p := curve.Params{Resource: 1, EfficiencyX: 1, EfficiencyY: 1}

	// beyond x max the frontier is flat zero
	require.Equal(t, curve.RegionInfeasible, curve.Classify(curve.Point{X: 5, Y: 3}, p, 0.5))
	require.Equal(t, curve.RegionOnBoundary, curve.Classify(curve.Point{X: 5, Y: 0.2}, p, 0.5))
}

func TestClassifyAll_Count(t *testing.T) {
	p := curve.Params{Resource: 4, EfficiencyX: 1, EfficiencyY: 1}
	points := []curve.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 10}, {X: 1, Y: 0.5}}

	cs := curve.ClassifyAll(points, p, 0.01)
	require.Len(t, cs, 4)
	require.Equal(t, points[2], cs[2].Point)

	counts := curve.Count(cs)
	require.Equal(t, 2, counts[curve.RegionFeasible])
	require.Equal(t, 1, counts[curve.RegionOnBoundary])
	require.Equal(t, 1, counts[curve.RegionInfeasible])
}

func TestRegion_String(t *testing.T) {
	require.Equal(t, "FEASIBLE", curve.RegionFeasible.String())
	require.Equal(t, "ON_BOUNDARY", curve.RegionOnBoundary.String())
	require.Equal(t, "INFEASIBLE", curve.RegionInfeasible.String())
	require.Equal(t, "UNKNOWN", curve.Region(0).String())
}

func TestRegionText(t *testing.T) {
	for _, r := range []curve.Region{curve.RegionFeasible, curve.RegionOnBoundary, curve.RegionInfeasible} {
		text, err := r.MarshalText()
		require.NoError(t, err)
		require.Equal(t, r.String(), string(text))

		var back curve.Region
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, r, back)
	}

	_, err := curve.Region(0).MarshalText()
	require.ErrorIs(t, err, curve.ErrInvalidParameter)

	var r curve.Region
	require.ErrorIs(t, r.UnmarshalText([]byte("BELOW")), curve.ErrInvalidParameter)
}
