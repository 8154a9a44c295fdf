package v1handler

import (
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

func (h *Handler) decodeMarket(r *http.Request) (domain.MarketSpec, error) {
	var spec domain.MarketSpec
	err := decodeBody(r.Body, func(d *jx.Decoder) error {
		var err error
		spec, err = decodeMarketSpec(d)

		return err
	})
	if err != nil {
		return spec, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return spec, nil
}

func (h *Handler) market(w http.ResponseWriter, r *http.Request, spec domain.MarketSpec) {
	dataset, err := h.plotter.Market(r.Context(), spec)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respond(w, http.StatusOK, func(e *jx.Encoder) { encodeDataset(e, dataset) })
}

// Equilibrium handles POST /v1/market/equilibrium. Shift and move fields of
// the body are ignored.
func (h *Handler) Equilibrium(w http.ResponseWriter, r *http.Request) {
	spec, err := h.decodeMarket(r)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	spec.DemandShift, spec.SupplyShift, spec.Move = 0, 0, nil

	h.market(w, r, spec)
}

// Shift handles POST /v1/market/shift: the curves are redrawn shifted by
// demandShift and supplyShift.
func (h *Handler) Shift(w http.ResponseWriter, r *http.Request) {
	spec, err := h.decodeMarket(r)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	if spec.DemandShift == 0 && spec.SupplyShift == 0 {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "demandShift or supplyShift is required"))

		return
	}
	spec.Move = nil

	h.market(w, r, spec)
}

// Move handles POST /v1/market/move: a movement along the demand curve,
// optionally shifting a related good's demand.
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	spec, err := h.decodeMarket(r)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	if spec.Move == nil {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "move is required"))

		return
	}

	h.market(w, r, spec)
}
