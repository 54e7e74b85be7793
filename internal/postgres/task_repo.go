package postgres

import (
	"context"
	"errors"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tasks (worker_id, patient_id, kind, due_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		int64(t.WorkerID), t.PatientID, t.Kind, t.DueDate, t.Status, t.Notes).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	var wid int64
	err := r.db.QueryRow(ctx, `
		SELECT id, worker_id, patient_id, kind, due_date, status, notes, created_at
		FROM tasks WHERE id=$1`, id).
		Scan(&t.ID, &wid, &t.PatientID, &t.Kind, &t.DueDate, &t.Status, &t.Notes, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	t.WorkerID = domain.UserID(wid)
	return &t, nil
}

func (r *TaskRepository) ListByWorker(ctx context.Context, workerID domain.UserID, status domain.TaskStatus) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, worker_id, patient_id, kind, due_date, status, notes, created_at
		FROM tasks
		WHERE worker_id=$1 AND ($2 = '' OR status=$2)
		ORDER BY due_date ASC, id ASC`,
		int64(workerID), string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		var t domain.Task
		var wid int64
		if err := rows.Scan(&t.ID, &wid, &t.PatientID, &t.Kind, &t.DueDate,
			&t.Status, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.WorkerID = domain.UserID(wid)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Complete — закрывает задачу и пишет визит в одной транзакции.
// Повторное закрытие не проходит условие status='open'.
func (r *TaskRepository) Complete(ctx context.Context, taskID string, v *domain.Visit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx,
		`UPDATE tasks SET status='done' WHERE id=$1 AND status='open'`, taskID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var status string
		if err := tx.QueryRow(ctx, `SELECT status FROM tasks WHERE id=$1`, taskID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}
		return domain.ErrTaskDone
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO visits (task_id, patient_id, worker_id, visited_at, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		v.TaskID, v.PatientID, int64(v.WorkerID), v.VisitedAt, v.Notes).Scan(&v.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) ListVisitsByPatient(ctx context.Context, patientID string) ([]domain.Visit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, task_id, patient_id, worker_id, visited_at, notes
		FROM visits WHERE patient_id=$1
		ORDER BY visited_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Visit
	for rows.Next() {
		var v domain.Visit
		var wid int64
		if err := rows.Scan(&v.ID, &v.TaskID, &v.PatientID, &wid, &v.VisitedAt, &v.Notes); err != nil {
			return nil, err
		}
		v.WorkerID = domain.UserID(wid)
		out = append(out, v)
	}
	return out, rows.Err()
}
