// Package v1handler implements the version 1 HTTP API of curvelab.
package v1handler

import (
	"context"
	"curvelab/internal/plotter"
	"curvelab/pkg/curve"
	"curvelab/pkg/logger"
	"curvelab/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Plotter plotter.Plotter
}

// Handler serves the v1 routes.
type Handler struct {
	plotter plotter.Plotter
}

// New constructs a Handler.
func New(deps Deps) *Handler {
	return &Handler{plotter: deps.Plotter}
}

// Register adds the v1 routes to mux. Scenario routes are wrapped with auth.
func (h *Handler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /v1/frontier", h.Frontier)
	mux.HandleFunc("GET /v1/frontier/probe", h.Probe)
	mux.HandleFunc("POST /v1/frontier/classify", h.Classify)
	mux.HandleFunc("GET /v1/frontier/scatter", h.Scatter)

	mux.HandleFunc("POST /v1/market/equilibrium", h.Equilibrium)
	mux.HandleFunc("POST /v1/market/shift", h.Shift)
	mux.HandleFunc("POST /v1/market/move", h.Move)

	mux.Handle("POST /v1/scenarios", auth(http.HandlerFunc(h.CreateScenario)))
	mux.Handle("GET /v1/scenarios", auth(http.HandlerFunc(h.ListScenarios)))
	mux.Handle("GET /v1/scenarios/{id}", auth(http.HandlerFunc(h.GetScenario)))
	mux.Handle("DELETE /v1/scenarios/{id}", auth(http.HandlerFunc(h.DeleteScenario)))
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse is an error mapped to its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var statusByKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	curve.ErrInvalidParameter: http.StatusBadRequest,
	serrors.ErrBadRequest:     http.StatusBadRequest,
	curve.ErrDegenerateMarket: http.StatusUnprocessableEntity,
	serrors.ErrNotFound:       http.StatusNotFound,
	serrors.ErrUnauthorized:   http.StatusUnauthorized,
	serrors.ErrConflict:       http.StatusConflict,
}

// NewError maps err to a response. Errors without a known kind become a
// generic internal error and are logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = defaultMessage(status)
	}
	logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", status))

	return &ErrorResponse{
		StatusCode: status,
		Response:   ErrorBody{Code: kind.Error(), Message: msg},
	}
}

func defaultMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusUnauthorized:
		return "unauthorized"
	default:
		return http.StatusText(status)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeJSON(w, res.StatusCode, &e)
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func (h *Handler) respond(w http.ResponseWriter, status int, f func(e *jx.Encoder)) {
	var e jx.Encoder
	f(&e)
	writeJSON(w, status, &e)
}
