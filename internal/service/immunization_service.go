package service

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

// vaccineOffset — прививка и её срок в днях от рождения.
// График — национальный календарь: BCG/OPV-0/HepB-0 при рождении,
// пентавалентная и OPV в 6/10/14 недель, корь-краснуха в 9 и 16 месяцев.
type vaccineOffset struct {
	Vaccine string
	Days    int
}

var immunizationCalendar = []vaccineOffset{
	{"BCG", 0},
	{"OPV-0", 0},
	{"HepB-0", 0},
	{"Penta-1", 42},
	{"OPV-1", 42},
	{"Penta-2", 70},
	{"OPV-2", 70},
	{"Penta-3", 98},
	{"OPV-3", 98},
	{"MR-1", 270},
	{"MR-2", 480},
	{"DPT-Booster", 480},
}

// ImmunizationSchedule строит график доз ребёнка от даты рождения.
func ImmunizationSchedule(patientID string, dob time.Time) []domain.ImmunizationDose {
	out := make([]domain.ImmunizationDose, 0, len(immunizationCalendar))
	for _, v := range immunizationCalendar {
		out = append(out, domain.ImmunizationDose{
			PatientID: patientID,
			Vaccine:   v.Vaccine,
			DueDate:   dob.AddDate(0, 0, v.Days),
		})
	}
	return out
}

type ImmunizationService struct {
	doses *postgres.ImmunizationRepository
	now   func() time.Time
}

func NewImmunizationService(doses *postgres.ImmunizationRepository) *ImmunizationService {
	return &ImmunizationService{doses: doses, now: time.Now}
}

// EnrollChild генерирует и сохраняет полный график прививок.
func (s *ImmunizationService) EnrollChild(ctx context.Context, patientID string, dob time.Time) ([]domain.ImmunizationDose, error) {
	if patientID == "" {
		return nil, fmt.Errorf("%w: patient is required", domain.ErrInvalidInput)
	}
	if dob.IsZero() || dob.After(s.now()) {
		return nil, fmt.Errorf("%w: invalid date of birth", domain.ErrInvalidInput)
	}

	schedule := ImmunizationSchedule(patientID, dob)
	if err := s.doses.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("doses.CreateSchedule: %w", err)
	}
	return schedule, nil
}

func (s *ImmunizationService) ListByPatient(ctx context.Context, patientID string) ([]domain.ImmunizationDose, error) {
	return s.doses.ListByPatient(ctx, patientID)
}

func (s *ImmunizationService) ListDue(ctx context.Context, from, to time.Time) ([]domain.ImmunizationDose, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: invalid date window", domain.ErrInvalidInput)
	}
	return s.doses.ListDue(ctx, from, to)
}

func (s *ImmunizationService) MarkAdministered(ctx context.Context, doseID string, by domain.UserID) error {
	return s.doses.MarkAdministered(ctx, doseID, by, s.now())
}
