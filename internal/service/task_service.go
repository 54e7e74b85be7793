package service

import (
	"context"
	"fmt"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

type TaskService struct {
	tasks *postgres.TaskRepository
	now   func() time.Time
}

func NewTaskService(tasks *postgres.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, t *domain.Task) error {
	switch t.Kind {
	case domain.TaskANCVisit, domain.TaskImmunization, domain.TaskFollowup, domain.TaskSurvey:
	default:
		return fmt.Errorf("%w: unknown task kind %q", domain.ErrInvalidInput, t.Kind)
	}
	if t.WorkerID == 0 || t.PatientID == "" {
		return fmt.Errorf("%w: worker and patient are required", domain.ErrInvalidInput)
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", domain.ErrInvalidInput)
	}
	t.Status = domain.TaskOpen

	if err := s.tasks.Create(ctx, t); err != nil {
		return fmt.Errorf("tasks.Create: %w", err)
	}
	return nil
}

func (s *TaskService) ListByWorker(ctx context.Context, workerID domain.UserID, status domain.TaskStatus) ([]domain.Task, error) {
	if status != "" {
		switch status {
		case domain.TaskOpen, domain.TaskDone, domain.TaskMissed:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
		}
	}
	return s.tasks.ListByWorker(ctx, workerID, status)
}

// Complete закрывает задачу и фиксирует визит. Повторное закрытие — ErrTaskDone.
func (s *TaskService) Complete(ctx context.Context, taskID string, workerID domain.UserID, notes *string) (*domain.Visit, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	v := &domain.Visit{
		TaskID:    task.ID,
		PatientID: task.PatientID,
		WorkerID:  workerID,
		VisitedAt: s.now(),
		Notes:     notes,
	}
	if err := s.tasks.Complete(ctx, taskID, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *TaskService) ListVisitsByPatient(ctx context.Context, patientID string) ([]domain.Visit, error) {
	return s.tasks.ListVisitsByPatient(ctx, patientID)
}
