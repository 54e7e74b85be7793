package http

import (
	"encoding/json"
	"net/http"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type AlertHandlers struct {
	Alerts *service.AlertService
}

func (h *AlertHandlers) Raise(w http.ResponseWriter, r *http.Request) {
	var in alertRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	by, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	a, err := h.Alerts.Raise(r.Context(), domain.AlertKind(in.Kind), in.PatientID, by, in.Message)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, a)
}

func (h *AlertHandlers) ListOpen(w http.ResponseWriter, r *http.Request) {
	list, err := h.Alerts.ListOpen(r.Context())
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, list)
}

func (h *AlertHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	by, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Alerts.Resolve(r.Context(), chi.URLParam(r, "id"), by); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, map[string]string{"status": "resolved"})
}
