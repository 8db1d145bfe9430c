package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/audiolux/audiolux/server/internal/api/respond"
	"github.com/audiolux/audiolux/server/internal/api/validate"
	"github.com/audiolux/audiolux/server/internal/model"
	"github.com/audiolux/audiolux/server/internal/store"
)

// DeviceHandler serves the device routes from a store.Store. Every served
// read or write is recorded in the history log.
type DeviceHandler struct {
	st  store.Store
	log zerolog.Logger
}

func NewDeviceHandler(st store.Store, log zerolog.Logger) *DeviceHandler {
	return &DeviceHandler{st: st, log: log}
}

// GetSettings GET /api/settings
func (h *DeviceHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.st.Settings().Get(r.Context())
	if err != nil {
		h.fail(w, err, "get settings")
		return
	}
	h.record(r.Context(), fmt.Sprintf("Retrieved settings: %s\n", s))
	respond.WriteJSON(w, http.StatusOK, s)
}

// PutSettings PUT /api/settings
func (h *DeviceHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var s model.Settings
	if err := validate.DecodeJSON(w, r, &s); err != nil {
		h.fail(w, err, "put settings")
		return
	}
	if err := h.st.Settings().Put(r.Context(), s); err != nil {
		h.fail(w, err, "put settings")
		return
	}
	h.record(r.Context(), fmt.Sprintf("Saved settings: %s\n", s))
	respond.WriteMessage(w, "Settings saved.")
}

// ListPatterns GET /api/patterns
func (h *DeviceHandler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	ps := model.Patterns()
	h.record(r.Context(), fmt.Sprintf("Retrieved pattern list: %s\n", quotedList(ps)))
	respond.WriteJSON(w, http.StatusOK, ps)
}

// GetPattern GET /api/pattern
func (h *DeviceHandler) GetPattern(w http.ResponseWriter, r *http.Request) {
	p, err := h.st.Patterns().Current(r.Context())
	if err != nil {
		h.fail(w, err, "get pattern")
		return
	}
	h.record(r.Context(), fmt.Sprintf("Retrieved current pattern: %s\n", p))
	respond.WriteJSON(w, http.StatusOK, p)
}

// PutPattern PUT /api/pattern and /api/pattern/
func (h *DeviceHandler) PutPattern(w http.ResponseWriter, r *http.Request) {
	var c model.Control
	if err := validate.DecodeJSON(w, r, &c); err != nil {
		h.fail(w, err, "put pattern")
		return
	}
	if err := h.st.Patterns().SetCurrent(r.Context(), *c.Pattern); err != nil {
		h.fail(w, err, "put pattern")
		return
	}
	h.log.Info().Str("pattern", string(*c.Pattern)).Msg("New pattern")
	h.record(r.Context(), fmt.Sprintf("Saved pattern: %s\n", *c.Pattern))
	respond.WriteMessage(w, "Pattern saved.")
}

// GetHistory GET /api/history drains the log.
func (h *DeviceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	lines, err := h.st.History().Drain(r.Context())
	if err != nil {
		h.fail(w, err, "get history")
		return
	}
	respond.WriteJSON(w, http.StatusOK, lines)
}

// record appends to history; a failure is logged but does not fail the request.
func (h *DeviceHandler) record(ctx context.Context, line string) {
	if err := h.st.History().Append(ctx, line); err != nil {
		h.log.Error().Stack().Err(err).Msg("append history")
	}
}

// quotedList renders names as a bracketed, single-quoted list: ['a', 'b'].
func quotedList(ps []model.Pattern) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = "'" + string(p) + "'"
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (h *DeviceHandler) fail(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		h.log.Warn().Str("op", op).Str("reason", validate.Message(err)).Msg("validation failed")
		respond.WriteValidationError(w, validate.Message(err))
	case errors.Is(err, model.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Stack().Err(err).Str("op", op).Msg("store failure")
		respond.WriteInternalError(w, err.Error())
	}
}
