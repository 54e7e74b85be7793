package http

import (
	"encoding/json"
	"net/http"

	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"
)

type BloodHandlers struct {
	Blood *service.BloodService
}

func (h *BloodHandlers) Upsert(w http.ResponseWriter, r *http.Request) {
	var in bloodUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	st, err := h.Blood.Upsert(r.Context(), in.Facility, in.Group, in.Units)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, st)
}

func (h *BloodHandlers) Adjust(w http.ResponseWriter, r *http.Request) {
	var in bloodAdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	by, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	st, err := h.Blood.Adjust(r.Context(), in.Facility, in.Group, in.Delta, by)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, st)
}

func (h *BloodHandlers) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Blood.List(r.Context(), r.URL.Query().Get("facility"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, list)
}
