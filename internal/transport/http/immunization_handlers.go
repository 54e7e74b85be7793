package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type ImmunizationHandlers struct {
	Immunizations *service.ImmunizationService
}

func (h *ImmunizationHandlers) Enroll(w http.ResponseWriter, r *http.Request) {
	var in enrollChildRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	dob, err := parseDate(in.DOB)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
		return
	}

	schedule, err := h.Immunizations.EnrollChild(r.Context(), in.PatientID, dob)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, schedule)
}

func (h *ImmunizationHandlers) ListByPatient(w http.ResponseWriter, r *http.Request) {
	doses, err := h.Immunizations.ListByPatient(r.Context(), chi.URLParam(r, "patientId"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, doses)
}

// ListDue отдаёт дозы со сроком в окне [from, to]. Без параметров окно
// равно ближайшим двум неделям.
func (h *ImmunizationHandlers) ListDue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 14)
	if s := q.Get("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		from = t
	}
	if s := q.Get("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		to = t
	}

	doses, err := h.Immunizations.ListDue(r.Context(), from, to)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, doses)
}

func (h *ImmunizationHandlers) MarkAdministered(w http.ResponseWriter, r *http.Request) {
	by, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Immunizations.MarkAdministered(r.Context(), chi.URLParam(r, "doseId"), by); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, map[string]string{"status": "administered"})
}
