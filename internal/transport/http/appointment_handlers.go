package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type AppointmentHandlers struct {
	Appointments *service.AppointmentService
}

func (h *AppointmentHandlers) Book(w http.ResponseWriter, r *http.Request) {
	var in appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	a, err := h.Appointments.Book(r.Context(), in.PatientID, in.DoctorID, in.ScheduledAt, in.Reason)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, a)
}

func (h *AppointmentHandlers) ListByDoctorDay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	doctorID, err := strconv.ParseInt(q.Get("doctorId"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "doctorId must be an integer")
		return
	}
	day := time.Now()
	if s := q.Get("day"); s != "" {
		day, err = parseDate(s)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
			return
		}
	}

	appts, err := h.Appointments.ListByDoctorDay(r.Context(), domain.UserID(doctorID), day)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, appts)
}

func (h *AppointmentHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.Appointments.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, map[string]string{"status": "cancelled"})
}

func (h *AppointmentHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	if err := h.Appointments.Complete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, map[string]string{"status": "completed"})
}
