package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

type PrescriptionService struct {
	prescriptions *postgres.PrescriptionRepository
}

func NewPrescriptionService(prescriptions *postgres.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions}
}

func (s *PrescriptionService) Issue(ctx context.Context, patientID string, doctorID domain.UserID, lines []domain.PrescriptionLine, advice *string) (*domain.Prescription, error) {
	if patientID == "" {
		return nil, fmt.Errorf("%w: patient is required", domain.ErrInvalidInput)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: prescription must contain at least one line", domain.ErrInvalidInput)
	}
	for i, l := range lines {
		if strings.TrimSpace(l.Drug) == "" {
			return nil, fmt.Errorf("%w: line %d: drug name is required", domain.ErrInvalidInput, i+1)
		}
	}

	p := &domain.Prescription{
		PatientID: patientID,
		DoctorID:  doctorID,
		Lines:     lines,
		Advice:    advice,
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrescriptionService) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	return s.prescriptions.ListByPatient(ctx, patientID)
}
