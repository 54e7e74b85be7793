package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

type BloodService struct {
	stock  *postgres.BloodRepository
	alerts *postgres.AlertRepository
	log    *slog.Logger
}

func NewBloodService(stock *postgres.BloodRepository, alerts *postgres.AlertRepository, log *slog.Logger) *BloodService {
	return &BloodService{stock: stock, alerts: alerts, log: log}
}

func (s *BloodService) Upsert(ctx context.Context, facility, group string, units int) (*domain.BloodStock, error) {
	if facility == "" {
		return nil, fmt.Errorf("%w: facility is required", domain.ErrInvalidInput)
	}
	if !domain.ValidBloodGroup(group) {
		return nil, fmt.Errorf("%w: unknown blood group %q", domain.ErrInvalidInput, group)
	}
	if units < 0 {
		return nil, fmt.Errorf("%w: units cannot be negative", domain.ErrInvalidInput)
	}
	st := &domain.BloodStock{Facility: facility, Group: group, Units: units}
	if err := s.stock.Upsert(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Adjust меняет остаток на delta. Уход в ноль поднимает stockout-оповещение,
// но его сбой не ломает саму операцию.
func (s *BloodService) Adjust(ctx context.Context, facility, group string, delta int, by domain.UserID) (*domain.BloodStock, error) {
	if !domain.ValidBloodGroup(group) {
		return nil, fmt.Errorf("%w: unknown blood group %q", domain.ErrInvalidInput, group)
	}
	st, err := s.stock.Adjust(ctx, facility, group, delta)
	if err != nil {
		return nil, err
	}
	if st.Units == 0 && delta < 0 {
		a := &domain.Alert{
			Kind:     domain.AlertStockout,
			RaisedBy: by,
			Message:  fmt.Sprintf("blood group %s depleted at %s", group, facility),
		}
		if err := s.alerts.Create(ctx, a); err != nil {
			s.log.WarnContext(ctx, "stockout alert not raised", "facility", facility, "group", group, "error", err)
		}
	}
	return st, nil
}

func (s *BloodService) List(ctx context.Context, facility string) ([]domain.BloodStock, error) {
	return s.stock.List(ctx, facility)
}
