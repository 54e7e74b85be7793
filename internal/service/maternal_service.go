package service

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

// Недели беременности, на которые планируются дородовые осмотры.
var ancWeeks = [...]int{12, 20, 28, 36}

const gestationDays = 280

// ComputeEDD — предполагаемая дата родов: LMP + 280 дней (правило Негеле).
func ComputeEDD(lmp time.Time) time.Time {
	return lmp.AddDate(0, 0, gestationDays)
}

// ANCSchedule строит график из четырех осмотров от даты LMP.
func ANCSchedule(lmp time.Time) []domain.ANCCheckup {
	out := make([]domain.ANCCheckup, 0, len(ancWeeks))
	for i, w := range ancWeeks {
		out = append(out, domain.ANCCheckup{
			Number:  i + 1,
			DueDate: lmp.AddDate(0, 0, w*7),
		})
	}
	return out
}

type MaternalService struct {
	maternal *postgres.MaternalRepository
	now      func() time.Time
}

func NewMaternalService(maternal *postgres.MaternalRepository) *MaternalService {
	return &MaternalService{maternal: maternal, now: time.Now}
}

// RegisterPregnancy заводит беременность и сразу весь график осмотров.
func (s *MaternalService) RegisterPregnancy(ctx context.Context, patientID string, lmp time.Time, highRisk bool) (*domain.Pregnancy, []domain.ANCCheckup, error) {
	if patientID == "" {
		return nil, nil, fmt.Errorf("%w: patient is required", domain.ErrInvalidInput)
	}
	now := s.now()
	if lmp.IsZero() || lmp.After(now) {
		return nil, nil, fmt.Errorf("%w: invalid LMP date", domain.ErrInvalidInput)
	}
	// срок больше 10 месяцев назад — это уже не текущая беременность
	if now.Sub(lmp) > 310*24*time.Hour {
		return nil, nil, fmt.Errorf("%w: LMP is too far in the past", domain.ErrInvalidInput)
	}

	p := &domain.Pregnancy{
		PatientID: patientID,
		LMP:       lmp,
		EDD:       ComputeEDD(lmp),
		HighRisk:  highRisk,
	}
	checkups := ANCSchedule(lmp)

	if err := s.maternal.CreatePregnancy(ctx, p, checkups); err != nil {
		return nil, nil, fmt.Errorf("maternal.CreatePregnancy: %w", err)
	}
	return p, checkups, nil
}

func (s *MaternalService) GetPregnancy(ctx context.Context, id string) (*domain.Pregnancy, []domain.ANCCheckup, error) {
	p, err := s.maternal.GetPregnancy(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	checkups, err := s.maternal.ListCheckups(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return p, checkups, nil
}

func (s *MaternalService) RecordCheckup(ctx context.Context, checkupID string, notes *string) error {
	return s.maternal.MarkCheckupDone(ctx, checkupID, s.now(), notes)
}

func (s *MaternalService) ListOverdueCheckups(ctx context.Context) ([]domain.ANCCheckup, error) {
	return s.maternal.ListOverdue(ctx, s.now())
}
