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

type TaskHandlers struct {
	Tasks *service.TaskService
}

func (h *TaskHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in taskRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	due, err := parseDate(in.DueDate)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		return
	}

	t := &domain.Task{
		WorkerID:  in.WorkerID,
		PatientID: in.PatientID,
		Kind:      domain.TaskKind(in.Kind),
		DueDate:   due,
		Notes:     in.Notes,
	}
	if err := h.Tasks.Create(r.Context(), t); err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, t)
}

// List отдает задачи текущего работника либо заданного через ?workerId.
func (h *TaskHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	workerID, _ := UserIDFromContext(r.Context())
	if s := q.Get("workerId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "workerId must be an integer")
			return
		}
		workerID = domain.UserID(id)
	}

	tasks, err := h.Tasks.ListByWorker(r.Context(), workerID, domain.TaskStatus(q.Get("status")))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, tasks)
}

func (h *TaskHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	var in completeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	workerID, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	visit, err := h.Tasks.Complete(r.Context(), chi.URLParam(r, "id"), workerID, in.Notes)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, visit)
}

func (h *TaskHandlers) VisitsByPatient(w http.ResponseWriter, r *http.Request) {
	visits, err := h.Tasks.ListVisitsByPatient(r.Context(), chi.URLParam(r, "patientId"))
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, visits)
}
