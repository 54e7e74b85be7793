package http

import (
	"encoding/json"
	"net/http"

	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type PrescriptionHandlers struct {
	Prescriptions *service.PrescriptionService
}

func (h *PrescriptionHandlers) Issue(w http.ResponseWriter, r *http.Request) {
	var in prescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	doctorID, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	p, err := h.Prescriptions.Issue(r.Context(), in.PatientID, doctorID, in.Lines, in.Advice)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, p)
}

func (h *PrescriptionHandlers) ListByPatient(w http.ResponseWriter, r *http.Request) {
	list, err := h.Prescriptions.ListByPatient(r.Context(), chi.URLParam(r, "patientId"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, list)
}
