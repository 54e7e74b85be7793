package domain

import "time"

type Pregnancy struct {
	ID        string    `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patientId"`
	LMP       time.Time `db:"lmp" json:"lmp"` // последняя менструация, от нее считается срок
	EDD       time.Time `db:"edd" json:"edd"`
	HighRisk  bool      `db:"high_risk" json:"highRisk"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ClosedAt  *time.Time `db:"closed_at" json:"closedAt,omitempty"`
}

// ANCCheckup — плановый дородовый осмотр.
type ANCCheckup struct {
	ID          string     `db:"id" json:"id"`
	PregnancyID string     `db:"pregnancy_id" json:"pregnancyId"`
	Number      int        `db:"number" json:"number"` // 1..4
	DueDate     time.Time  `db:"due_date" json:"dueDate"`
	DoneAt      *time.Time `db:"done_at" json:"doneAt,omitempty"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
}
