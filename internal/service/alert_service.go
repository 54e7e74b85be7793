package service

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

type AlertService struct {
	alerts *postgres.AlertRepository
	now    func() time.Time
}

func NewAlertService(alerts *postgres.AlertRepository) *AlertService {
	return &AlertService{alerts: alerts, now: time.Now}
}

func (s *AlertService) Raise(ctx context.Context, kind domain.AlertKind, patientID *string, by domain.UserID, message string) (*domain.Alert, error) {
	switch kind {
	case domain.AlertSOS, domain.AlertHighRisk, domain.AlertStockout:
	default:
		return nil, fmt.Errorf("%w: unknown alert kind %q", domain.ErrInvalidInput, kind)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	a := &domain.Alert{Kind: kind, PatientID: patientID, RaisedBy: by, Message: message}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AlertService) ListOpen(ctx context.Context) ([]domain.Alert, error) {
	return s.alerts.ListOpen(ctx)
}

func (s *AlertService) Resolve(ctx context.Context, id string, by domain.UserID) error {
	return s.alerts.Resolve(ctx, id, by, s.now())
}
