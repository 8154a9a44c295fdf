package plotter

import (
	"curvelab/internal/config"
	"curvelab/pkg/curve"
	"time"
)

// Options are the rendering defaults and caller-side policies applied to
// every scenario.
type Options struct {
	// SamplePoints is used when a frontier spec does not set Points.
	SamplePoints int
	// MaxSamplePoints caps frontier points, market points and sample lists.
	MaxSamplePoints int
	// Tolerance is used when a frontier spec does not set one.
	Tolerance float64
	// TangentPoints and TangentSpanRatio shape the probe tangent: it spans
	// TangentSpanRatio of the global x range on each side of the probe.
	TangentPoints    int
	TangentSpanRatio float64
	ScatterSeed      int64
	ScatterPoints    int

	// Bounds rejects parameters beyond the slider maxima and defines the
	// global axis box.
	Bounds curve.Bounds

	// QuantityMax and MarketPoints define the default market quantity grid.
	QuantityMax  float64
	MarketPoints int
	// AllowNegativeEquilibrium disables raising the demand intercept up to
	// the supply intercept.
	AllowNegativeEquilibrium bool

	// MaxAttempts is the number of render attempts before a job gives up.
	MaxAttempts int
	// UniqueRenderPeriod is the window in which a second render job for the
	// same scenario is dropped as a duplicate.
	UniqueRenderPeriod time.Duration
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		SamplePoints:     50,
		MaxSamplePoints:  2000,
		Tolerance:        2,
		TangentPoints:    200,
		TangentSpanRatio: 0.2,
		ScatterSeed:      42,
		ScatterPoints:    30,
		Bounds: curve.Bounds{
			MaxResource:    40,
			MaxEfficiencyX: 20,
			MaxEfficiencyY: 20,
		},
		QuantityMax:        10,
		MarketPoints:       100,
		MaxAttempts:        3,
		UniqueRenderPeriod: time.Hour,
	}
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.SamplePoints = cfg.Engine.SamplePoints
	opts.MaxSamplePoints = cfg.Engine.MaxSamplePoints
	opts.Tolerance = cfg.Engine.Tolerance
	opts.TangentPoints = cfg.Engine.TangentPoints
	opts.TangentSpanRatio = cfg.Engine.TangentSpanRatio
	opts.ScatterSeed = cfg.Engine.ScatterSeed
	opts.ScatterPoints = cfg.Engine.ScatterPoints
	opts.Bounds = curve.Bounds{
		MaxResource:    cfg.Bounds.MaxResource,
		MaxEfficiencyX: cfg.Bounds.MaxEfficiencyX,
		MaxEfficiencyY: cfg.Bounds.MaxEfficiencyY,
	}
	opts.QuantityMax = cfg.Market.QuantityMax
	opts.MarketPoints = cfg.Market.SamplePoints
	opts.AllowNegativeEquilibrium = cfg.Market.AllowNegativeEquilibrium
	opts.MaxAttempts = cfg.Worker.MaxAttempts

	return opts
}
