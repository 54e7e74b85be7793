package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create — уникальный индекс (doctor_id, scheduled_at) WHERE status='booked'
// не даёт занять один слот дважды.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, scheduled_at, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		a.PatientID, int64(a.DoctorID), a.ScheduledAt, a.Reason, a.Status).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if errors.Is(mapPgError(err), domain.ErrAlreadyExists) {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	var did int64
	err := r.db.QueryRow(ctx, `
		SELECT id, patient_id, doctor_id, scheduled_at, reason, status, created_at
		FROM appointments WHERE id=$1`, id).
		Scan(&a.ID, &a.PatientID, &did, &a.ScheduledAt, &a.Reason, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	a.DoctorID = domain.UserID(did)
	return &a, nil
}

func (r *AppointmentRepository) ListByDoctorDay(ctx context.Context, doctorID domain.UserID, day time.Time) ([]domain.Appointment, error) {
	from := day.Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	rows, err := r.db.Query(ctx, `
		SELECT id, patient_id, doctor_id, scheduled_at, reason, status, created_at
		FROM appointments
		WHERE doctor_id=$1 AND scheduled_at >= $2 AND scheduled_at < $3
		ORDER BY scheduled_at ASC`,
		int64(doctorID), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		var did int64
		if err := rows.Scan(&a.ID, &a.PatientID, &did, &a.ScheduledAt, &a.Reason,
			&a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.DoctorID = domain.UserID(did)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) SetStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE appointments SET status=$3 WHERE id=$1 AND status=$2`, id, from, to)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM appointments WHERE id=$1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrAlreadyExists
	}
	return nil
}
