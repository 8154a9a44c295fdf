package curve

import "curvelab/pkg/serrors"

var (
	// ErrInvalidParameter is returned when a resource or efficiency is not
	// strictly positive, or when fewer than two sample points are requested.
	ErrInvalidParameter = serrors.NewKind("INVALID_PARAMETER")
	// ErrDegenerateMarket is returned when demand and supply have the same
	// slope and therefore no unique equilibrium.
	ErrDegenerateMarket = serrors.NewKind("DEGENERATE_MARKET")
)
