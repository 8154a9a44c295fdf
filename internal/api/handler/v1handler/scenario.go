package v1handler

import (
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.writeError(r.Context(), w, serrors.KindOnly(serrors.ErrUnauthorized))
	}

	return userID, ok
}

func (h *Handler) scenarioID(w http.ResponseWriter, r *http.Request) (domain.ScenarioID, bool) {
	id, err := domain.ParseScenarioID(r.PathValue("id"))
	if err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scenario id"))

		return id, false
	}

	return id, true
}

// CreateScenario handles POST /v1/scenarios. The scenario is saved as
// PENDING and rendered in the background.
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var scenario domain.Scenario
	err := decodeBody(r.Body, func(d *jx.Decoder) error {
		var err error
		scenario, err = decodeScenario(d)

		return err
	})
	if err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	scenario.UserID = userID

	created, err := h.plotter.Create(r.Context(), scenario)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Location", "/v1/scenarios/"+created.ID.String())
	h.respond(w, http.StatusCreated, func(e *jx.Encoder) { encodeScenario(e, created) })
}

// ListScenarios handles GET /v1/scenarios, newest first.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}
	switch {
	case limit == 0:
		limit = defaultPageSize
	case limit < 0 || limit > maxPageSize:
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", maxPageSize))

		return
	}

	kind := domain.ScenarioKind(q.Get("kind"))
	scenarios, next, err := h.plotter.UserScenarios(r.Context(), userID, kind, q.Get("cursor"), uint(limit))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("scenarios", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range scenarios {
						encodeScenario(e, &scenarios[i])
					}
				})
			})
			if next != "" {
				e.Field("nextCursor", func(e *jx.Encoder) { e.Str(next) })
			}
		})
	})
}

// GetScenario handles GET /v1/scenarios/{id}.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.scenarioID(w, r)
	if !ok {
		return
	}

	scenario, err := h.plotter.Get(r.Context(), userID, id)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.respond(w, http.StatusOK, func(e *jx.Encoder) { encodeScenario(e, scenario) })
}

// DeleteScenario handles DELETE /v1/scenarios/{id}.
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.scenarioID(w, r)
	if !ok {
		return
	}

	if err := h.plotter.Delete(r.Context(), userID, id); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
