package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type PatientHandlers struct {
	Patients *service.PatientService
}

func (h *PatientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in patientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	dob, err := parseDate(in.DOB)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
		return
	}

	p := &domain.Patient{
		Name:    in.Name,
		DOB:     dob,
		Sex:     in.Sex,
		Phone:   in.Phone,
		Village: in.Village,
		ABHAID:  in.ABHAID,
	}
	if err := h.Patients.Register(r.Context(), p); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, toPatientResponse(p))
}

func (h *PatientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Patients.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, toPatientResponse(p))
}

func (h *PatientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var in patientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	dob, err := parseDate(in.DOB)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
		return
	}

	p := &domain.Patient{
		ID:      chi.URLParam(r, "id"),
		Name:    in.Name,
		DOB:     dob,
		Sex:     in.Sex,
		Phone:   in.Phone,
		Village: in.Village,
		ABHAID:  in.ABHAID,
	}
	if err := h.Patients.Update(r.Context(), p); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, toPatientResponse(p))
}

func (h *PatientHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	patients, next, err := h.Patients.List(r.Context(), q.Get("village"), limit, q.Get("cursor"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	out := patientListResponse{Patients: make([]patientResponse, 0, len(patients)), NextCursor: next}
	for i := range patients {
		out.Patients = append(out.Patients, toPatientResponse(&patients[i]))
	}

	httputil.OK(w, out)
}
