package postgres

import (
	"context"
	"encoding/json"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PrescriptionRepository struct {
	db *pgxpool.Pool
}

func NewPrescriptionRepository(db *pgxpool.Pool) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	lines, err := json.Marshal(p.Lines)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO prescriptions (patient_id, doctor_id, lines, advice)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.PatientID, int64(p.DoctorID), lines, p.Advice).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, patient_id, doctor_id, lines, advice, created_at
		FROM prescriptions WHERE patient_id=$1
		ORDER BY created_at DESC, id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		var did int64
		var lines []byte
		if err := rows.Scan(&p.ID, &p.PatientID, &did, &lines, &p.Advice, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.DoctorID = domain.UserID(did)
		if err := json.Unmarshal(lines, &p.Lines); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
