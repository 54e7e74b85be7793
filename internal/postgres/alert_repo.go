package postgres

import (
	"context"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *domain.Alert) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO alerts (kind, patient_id, raised_by, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		a.Kind, a.PatientID, int64(a.RaisedBy), a.Message).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *AlertRepository) ListOpen(ctx context.Context) ([]domain.Alert, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, patient_id, raised_by, message, created_at, resolved_at, resolved_by
		FROM alerts WHERE resolved_at IS NULL
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Alert
	for rows.Next() {
		var a domain.Alert
		var raisedBy int64
		var resolvedBy *int64
		if err := rows.Scan(&a.ID, &a.Kind, &a.PatientID, &raisedBy, &a.Message,
			&a.CreatedAt, &a.ResolvedAt, &resolvedBy); err != nil {
			return nil, err
		}
		a.RaisedBy = domain.UserID(raisedBy)
		if resolvedBy != nil {
			id := domain.UserID(*resolvedBy)
			a.ResolvedBy = &id
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AlertRepository) Resolve(ctx context.Context, id string, by domain.UserID, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE alerts SET resolved_at=$2, resolved_by=$3
		WHERE id=$1 AND resolved_at IS NULL`,
		id, at, int64(by))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM alerts WHERE id=$1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrAlertResolved
	}
	return nil
}
