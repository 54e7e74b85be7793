package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

type PatientService struct {
	patients *postgres.PatientRepository
}

func NewPatientService(patients *postgres.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Register(ctx context.Context, p *domain.Patient) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: patient name is required", domain.ErrInvalidInput)
	}
	if p.DOB.IsZero() || p.DOB.After(time.Now()) {
		return fmt.Errorf("%w: invalid date of birth", domain.ErrInvalidInput)
	}
	switch p.Sex {
	case "f", "m", "o":
	default:
		return fmt.Errorf("%w: sex must be one of f|m|o", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Village) == "" {
		return fmt.Errorf("%w: village is required", domain.ErrInvalidInput)
	}

	if err := s.patients.Create(ctx, p); err != nil {
		return fmt.Errorf("patients.Create: %w", err)
	}
	return nil
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *PatientService) Update(ctx context.Context, p *domain.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: patient name is required", domain.ErrInvalidInput)
	}
	return s.patients.Update(ctx, p)
}

func (s *PatientService) List(ctx context.Context, village string, limit int, cursor string) ([]domain.Patient, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.patients.List(ctx, village, limit, cursor)
}
