package http

import (
	"encoding/json"
	"net/http"

	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type MaternalHandlers struct {
	Maternal *service.MaternalService
}

func (h *MaternalHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in pregnancyRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	lmp, err := parseDate(in.LMP)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "lmp must be YYYY-MM-DD")
		return
	}

	p, checkups, err := h.Maternal.RegisterPregnancy(r.Context(), in.PatientID, lmp, in.HighRisk)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, pregnancyResponse{Pregnancy: p, Checkups: checkups})
}

func (h *MaternalHandlers) Get(w http.ResponseWriter, r *http.Request) {
	p, checkups, err := h.Maternal.GetPregnancy(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, pregnancyResponse{Pregnancy: p, Checkups: checkups})
}

func (h *MaternalHandlers) RecordCheckup(w http.ResponseWriter, r *http.Request) {
	var in checkupRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.Maternal.RecordCheckup(r.Context(), chi.URLParam(r, "checkupId"), in.Notes); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, map[string]string{"status": "recorded"})
}

func (h *MaternalHandlers) ListOverdue(w http.ResponseWriter, r *http.Request) {
	checkups, err := h.Maternal.ListOverdueCheckups(r.Context())
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, checkups)
}
