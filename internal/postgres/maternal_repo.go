package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaternalRepository struct {
	db *pgxpool.Pool
}

func NewMaternalRepository(db *pgxpool.Pool) *MaternalRepository {
	return &MaternalRepository{db: db}
}

// CreatePregnancy — пишет беременность и весь график осмотров одной транзакцией.
func (r *MaternalRepository) CreatePregnancy(ctx context.Context, p *domain.Pregnancy, checkups []domain.ANCCheckup) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO pregnancies (patient_id, lmp, edd, high_risk)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.PatientID, p.LMP, p.EDD, p.HighRisk).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}

	for i := range checkups {
		c := &checkups[i]
		c.PregnancyID = p.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO anc_checkups (pregnancy_id, number, due_date)
			VALUES ($1, $2, $3)
			RETURNING id`,
			c.PregnancyID, c.Number, c.DueDate).Scan(&c.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *MaternalRepository) GetPregnancy(ctx context.Context, id string) (*domain.Pregnancy, error) {
	var p domain.Pregnancy
	err := r.db.QueryRow(ctx, `
		SELECT id, patient_id, lmp, edd, high_risk, created_at, closed_at
		FROM pregnancies WHERE id=$1`, id).
		Scan(&p.ID, &p.PatientID, &p.LMP, &p.EDD, &p.HighRisk, &p.CreatedAt, &p.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MaternalRepository) ListCheckups(ctx context.Context, pregnancyID string) ([]domain.ANCCheckup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pregnancy_id, number, due_date, done_at, notes
		FROM anc_checkups WHERE pregnancy_id=$1
		ORDER BY number ASC`, pregnancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ANCCheckup
	for rows.Next() {
		var c domain.ANCCheckup
		if err := rows.Scan(&c.ID, &c.PregnancyID, &c.Number, &c.DueDate, &c.DoneAt, &c.Notes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MaternalRepository) MarkCheckupDone(ctx context.Context, checkupID string, doneAt time.Time, notes *string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE anc_checkups SET done_at=$2, notes=$3
		WHERE id=$1 AND done_at IS NULL`,
		checkupID, doneAt, notes)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM anc_checkups WHERE id=$1)`, checkupID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrCheckupDone
	}
	return nil
}

// ListOverdue — беременности с просроченными и не отмеченными осмотрами.
func (r *MaternalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.ANCCheckup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.pregnancy_id, c.number, c.due_date, c.done_at, c.notes
		FROM anc_checkups c
		JOIN pregnancies p ON p.id = c.pregnancy_id
		WHERE c.done_at IS NULL AND c.due_date < $1 AND p.closed_at IS NULL
		ORDER BY c.due_date ASC`, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ANCCheckup
	for rows.Next() {
		var c domain.ANCCheckup
		if err := rows.Scan(&c.ID, &c.PregnancyID, &c.Number, &c.DueDate, &c.DoneAt, &c.Notes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
