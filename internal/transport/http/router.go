package http

import (
	"net/http"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/security"
	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/internal/transport/ws"
	"github.com/swasthya-setu/backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Deps struct {
	JWT           *security.JWTSigner
	Auth          *service.AuthService
	Patients      *service.PatientService
	Tasks         *service.TaskService
	Maternal      *service.MaternalService
	Immunizations *service.ImmunizationService
	Appointments  *service.AppointmentService
	Prescriptions *service.PrescriptionService
	Blood         *service.BloodService
	Alerts        *service.AlertService
	Signaling     *ws.Server
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(httputil.MiddlewareRequestID)
	r.Use(httputil.MiddlewareLogging)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.OK(w, map[string]string{"status": "ok"})
	})

	ah := &AuthHandlers{Auth: d.Auth}
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", ah.Register)
		r.Post("/login", ah.Login)
		r.Post("/refresh", ah.Refresh)
		r.With(RequireAuth(d.JWT)).Get("/me", ah.Me)
	})

	// Сигналинг вне auth-группы: токен у браузерного WebSocket передать
	// заголовком нельзя, клиент шлёт его первым кадром либо не шлёт вовсе.
	r.Get("/ws/signaling", d.Signaling.HandleWS)

	// всё остальное только с токеном
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(d.JWT))

		ph := &PatientHandlers{Patients: d.Patients}
		r.Route("/patients", func(r chi.Router) {
			r.Post("/", ph.Create)
			r.Get("/", ph.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ph.Get)
				r.Put("/", ph.Update)
			})
		})

		th := &TaskHandlers{Tasks: d.Tasks}
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", th.Create)
			r.Get("/", th.List)
			r.Post("/{id}/complete", th.Complete)
		})
		r.Get("/visits/patient/{patientId}", th.VisitsByPatient)

		mh := &MaternalHandlers{Maternal: d.Maternal}
		r.Route("/pregnancies", func(r chi.Router) {
			r.Post("/", mh.Register)
			r.Get("/overdue", mh.ListOverdue)
			r.Get("/{id}", mh.Get)
			r.Post("/checkups/{checkupId}", mh.RecordCheckup)
		})

		ih := &ImmunizationHandlers{Immunizations: d.Immunizations}
		r.Route("/immunizations", func(r chi.Router) {
			r.Post("/", ih.Enroll)
			r.Get("/due", ih.ListDue)
			r.Get("/patient/{patientId}", ih.ListByPatient)
			r.Post("/{doseId}/administer", ih.MarkAdministered)
		})

		aph := &AppointmentHandlers{Appointments: d.Appointments}
		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", aph.Book)
			r.Get("/", aph.ListByDoctorDay)
			r.Post("/{id}/cancel", aph.Cancel)
			r.Post("/{id}/complete", aph.Complete)
		})

		prh := &PrescriptionHandlers{Prescriptions: d.Prescriptions}
		r.Route("/prescriptions", func(r chi.Router) {
			r.With(RequireRole(domain.RoleDoctor)).Post("/", prh.Issue)
			r.Get("/patient/{patientId}", prh.ListByPatient)
		})

		bh := &BloodHandlers{Blood: d.Blood}
		r.Route("/blood-bank", func(r chi.Router) {
			r.With(RequireRole(domain.RolePHCStaff)).Post("/", bh.Upsert)
			r.With(RequireRole(domain.RolePHCStaff)).Post("/adjust", bh.Adjust)
			r.Get("/", bh.List)
		})

		alh := &AlertHandlers{Alerts: d.Alerts}
		r.Route("/alerts", func(r chi.Router) {
			r.Post("/", alh.Raise)
			r.Get("/", alh.ListOpen)
			r.Post("/{id}/resolve", alh.Resolve)
		})
	})

	return r
}
