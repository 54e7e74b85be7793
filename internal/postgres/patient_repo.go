package postgres

import (
	"context"
	"errors"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PatientRepository struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	query := `
		INSERT INTO patients (name, dob, sex, phone, village, abha_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.DOB, p.Sex, p.Phone, p.Village, p.ABHAID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*domain.Patient, error) {
	var p domain.Patient
	query := `
		SELECT id, name, dob, sex, phone, village, abha_id, created_at, updated_at
		FROM patients WHERE id=$1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.DOB, &p.Sex, &p.Phone, &p.Village, &p.ABHAID,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE patients
		SET name=$2, phone=$3, village=$4, abha_id=$5, updated_at=now()
		WHERE id=$1`,
		p.ID, p.Name, p.Phone, p.Village, p.ABHAID)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List — курсорная пагинация (created_at,id DESC), опционально по деревне.
func (r *PatientRepository) List(ctx context.Context, village string, limit int, cursorStr string) ([]domain.Patient, string, error) {
	cur, err := DecodeCursor(cursorStr)
	if err != nil {
		return nil, "", err
	}

	query := `
		SELECT id, name, dob, sex, phone, village, abha_id, created_at, updated_at
		FROM patients
		WHERE ($1 = '' OR village = $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2
		       OR (created_at = $2 AND id < $3))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.db.Query(ctx, query, village, createdAt, id, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.DOB, &p.Sex, &p.Phone, &p.Village,
			&p.ABHAID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, "", err
		}
		out = append(out, p)
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		next, _ = EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return out, next, rows.Err()
}
