package postgres

import (
	"context"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ImmunizationRepository struct {
	db *pgxpool.Pool
}

func NewImmunizationRepository(db *pgxpool.Pool) *ImmunizationRepository {
	return &ImmunizationRepository{db: db}
}

func (r *ImmunizationRepository) CreateSchedule(ctx context.Context, doses []domain.ImmunizationDose) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range doses {
		d := &doses[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO immunization_doses (patient_id, vaccine, due_date)
			VALUES ($1, $2, $3)
			RETURNING id`,
			d.PatientID, d.Vaccine, d.DueDate).Scan(&d.ID)
		if err != nil {
			return mapPgError(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *ImmunizationRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.ImmunizationDose, error) {
	return r.list(ctx, `
		SELECT id, patient_id, vaccine, due_date, administered_at, administered_by
		FROM immunization_doses WHERE patient_id=$1
		ORDER BY due_date ASC, vaccine ASC`, patientID)
}

// ListDue — неотмеченные дозы в окне дат, для планирования обходов.
func (r *ImmunizationRepository) ListDue(ctx context.Context, from, to time.Time) ([]domain.ImmunizationDose, error) {
	return r.list(ctx, `
		SELECT id, patient_id, vaccine, due_date, administered_at, administered_by
		FROM immunization_doses
		WHERE administered_at IS NULL AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date ASC`, from, to)
}

func (r *ImmunizationRepository) MarkAdministered(ctx context.Context, doseID string, by domain.UserID, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE immunization_doses SET administered_at=$2, administered_by=$3
		WHERE id=$1 AND administered_at IS NULL`,
		doseID, at, int64(by))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM immunization_doses WHERE id=$1)`, doseID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrDoseAdministered
	}
	return nil
}

func (r *ImmunizationRepository) list(ctx context.Context, query string, args ...any) ([]domain.ImmunizationDose, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ImmunizationDose
	for rows.Next() {
		var d domain.ImmunizationDose
		var by *int64
		if err := rows.Scan(&d.ID, &d.PatientID, &d.Vaccine, &d.DueDate, &d.AdministeredAt, &by); err != nil {
			return nil, err
		}
		if by != nil {
			id := domain.UserID(*by)
			d.AdministeredBy = &id
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
