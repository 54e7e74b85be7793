package domain

import "time"

type TaskKind string

const (
	TaskANCVisit     TaskKind = "anc_visit"
	TaskImmunization TaskKind = "immunization"
	TaskFollowup     TaskKind = "followup"
	TaskSurvey       TaskKind = "survey"
)

type TaskStatus string

const (
	TaskOpen   TaskStatus = "open"
	TaskDone   TaskStatus = "done"
	TaskMissed TaskStatus = "missed"
)

type Task struct {
	ID        string     `db:"id" json:"id"`
	WorkerID  UserID     `db:"worker_id" json:"workerId"`
	PatientID string     `db:"patient_id" json:"patientId"`
	Kind      TaskKind   `db:"kind" json:"kind"`
	DueDate   time.Time  `db:"due_date" json:"dueDate"`
	Status    TaskStatus `db:"status" json:"status"`
	Notes     *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// Visit — факт посещения, создаётся при закрытии задачи.
type Visit struct {
	ID        string    `db:"id" json:"id"`
	TaskID    string    `db:"task_id" json:"taskId"`
	PatientID string    `db:"patient_id" json:"patientId"`
	WorkerID  UserID    `db:"worker_id" json:"workerId"`
	VisitedAt time.Time `db:"visited_at" json:"visitedAt"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
}
