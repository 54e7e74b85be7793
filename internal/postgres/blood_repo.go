package postgres

import (
	"context"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BloodRepository struct {
	db *pgxpool.Pool
}

func NewBloodRepository(db *pgxpool.Pool) *BloodRepository {
	return &BloodRepository{db: db}
}

func (r *BloodRepository) Upsert(ctx context.Context, s *domain.BloodStock) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO blood_stock (facility, blood_group, units, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (facility, blood_group)
		DO UPDATE SET units = EXCLUDED.units, updated_at = now()
		RETURNING updated_at`,
		s.Facility, s.Group, s.Units).Scan(&s.UpdatedAt)
	return err
}

// Adjust — меняет запас на delta, не пропуская уход ниже нуля.
// Гонки двух списаний разрешает условие units + delta >= 0 в самом UPDATE.
func (r *BloodRepository) Adjust(ctx context.Context, facility, group string, delta int) (*domain.BloodStock, error) {
	var s domain.BloodStock
	err := r.db.QueryRow(ctx, `
		UPDATE blood_stock
		SET units = units + $3, updated_at = now()
		WHERE facility=$1 AND blood_group=$2 AND units + $3 >= 0
		RETURNING facility, blood_group, units, updated_at`,
		facility, group, delta).
		Scan(&s.Facility, &s.Group, &s.Units, &s.UpdatedAt)
	if err == nil {
		return &s, nil
	}

	var exists bool
	if e := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM blood_stock WHERE facility=$1 AND blood_group=$2)`,
		facility, group).Scan(&exists); e != nil {
		return nil, e
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

func (r *BloodRepository) List(ctx context.Context, facility string) ([]domain.BloodStock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT facility, blood_group, units, updated_at
		FROM blood_stock
		WHERE ($1 = '' OR facility = $1)
		ORDER BY facility, blood_group`, facility)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BloodStock
	for rows.Next() {
		var s domain.BloodStock
		if err := rows.Scan(&s.Facility, &s.Group, &s.Units, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
