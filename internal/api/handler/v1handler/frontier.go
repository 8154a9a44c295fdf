package v1handler

import (
	"curvelab/pkg/curve"
	"curvelab/pkg/serrors"
	"net/http"
	"net/url"

	"github.com/go-faster/jx"
	"github.com/spf13/cast"
)

func queryFloat(q url.Values, name string) (float64, error) {
	v, err := cast.ToFloat64E(q.Get(name))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a number", name)
	}

	return v, nil
}

func queryInt(q url.Values, name string) (int, error) {
	if !q.Has(name) {
		return 0, nil
	}
	v, err := cast.ToIntE(q.Get(name))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return v, nil
}

func queryParams(q url.Values) (curve.Params, error) {
	var (
		p   curve.Params
		err error
	)
	if p.Resource, err = queryFloat(q, "resource"); err != nil {
		return p, err
	}
	if p.EfficiencyX, err = queryFloat(q, "efficiencyX"); err != nil {
		return p, err
	}
	if p.EfficiencyY, err = queryFloat(q, "efficiencyY"); err != nil {
		return p, err
	}

	return p, nil
}

// Frontier handles GET /v1/frontier.
func (h *Handler) Frontier(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := queryParams(q)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	points, err := queryInt(q, "points")
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	frontier, err := h.plotter.Frontier(r.Context(), params, points)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("params", func(e *jx.Encoder) { encodeParams(e, params) })
			e.Field("xMax", func(e *jx.Encoder) { e.Float64(params.XMax()) })
			e.Field("yMax", func(e *jx.Encoder) { e.Float64(params.YMax()) })
			e.Field("points", func(e *jx.Encoder) { encodeCurve(e, frontier) })
		})
	})
}

// Probe handles GET /v1/frontier/probe.
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := queryParams(q)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	x, err := queryFloat(q, "x")
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	probe, err := h.plotter.Probe(r.Context(), params, x)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respond(w, http.StatusOK, func(e *jx.Encoder) { encodeProbe(e, probe) })
}

type classifyRequest struct {
	params    curve.Params
	samples   curve.Curve
	tolerance *float64
}

// Classify handles POST /v1/frontier/classify.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	err := decodeBody(r.Body, func(d *jx.Decoder) error {
		return d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "params":
				req.params, err = decodeParams(d)
			case "samples":
				req.samples, err = decodeCurve(d)
			case "tolerance":
				req.tolerance, err = decodeFloatPtr(d)
			default:
				err = d.Skip()
			}

			return err
		})
	})
	if err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if len(req.samples) == 0 {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "samples must not be empty"))

		return
	}

	classified, err := h.plotter.Classify(r.Context(), req.params, req.samples, req.tolerance)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respondClassified(w, classified)
}

// Scatter handles GET /v1/frontier/scatter.
func (h *Handler) Scatter(w http.ResponseWriter, r *http.Request) {
	params, err := queryParams(r.URL.Query())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	classified, err := h.plotter.Scatter(r.Context(), params)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respondClassified(w, classified)
}

func (h *Handler) respondClassified(w http.ResponseWriter, classified []curve.Classification) {
	counts := curve.Count(classified)
	h.respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("classified", func(e *jx.Encoder) { encodeClassified(e, classified) })
			e.Field("counts", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					for _, region := range []curve.Region{curve.RegionFeasible, curve.RegionOnBoundary, curve.RegionInfeasible} {
						e.Field(region.String(), func(e *jx.Encoder) { e.Int(counts[region]) })
					}
				})
			})
		})
	})
}
