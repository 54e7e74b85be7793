package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

// Слоты приема выравниваются по 15 минут, чтобы уникальный индекс
// (doctor_id, scheduled_at) реально ловил двойные брони.
const slotGranularity = 15 * time.Minute

type AppointmentService struct {
	appointments *postgres.AppointmentRepository
	now          func() time.Time
}

func NewAppointmentService(appointments *postgres.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, now: time.Now}
}

func (s *AppointmentService) Book(ctx context.Context, patientID string, doctorID domain.UserID, at time.Time, reason string) (*domain.Appointment, error) {
	if patientID == "" || doctorID == 0 {
		return nil, fmt.Errorf("%w: patient and doctor are required", domain.ErrInvalidInput)
	}
	at = at.Truncate(slotGranularity)
	if at.Before(s.now()) {
		return nil, fmt.Errorf("%w: cannot book in the past", domain.ErrInvalidInput)
	}

	a := &domain.Appointment{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: at,
		Reason:      strings.TrimSpace(reason),
		Status:      domain.AppointmentBooked,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) ListByDoctorDay(ctx context.Context, doctorID domain.UserID, day time.Time) ([]domain.Appointment, error) {
	return s.appointments.ListByDoctorDay(ctx, doctorID, day)
}

func (s *AppointmentService) Cancel(ctx context.Context, id string) error {
	return s.appointments.SetStatus(ctx, id, domain.AppointmentBooked, domain.AppointmentCancelled)
}

func (s *AppointmentService) Complete(ctx context.Context, id string) error {
	return s.appointments.SetStatus(ctx, id, domain.AppointmentBooked, domain.AppointmentCompleted)
}
