package domain

import "time"

// ImmunizationDose — одна доза из графика прививок ребёнка.
type ImmunizationDose struct {
	ID             string     `db:"id" json:"id"`
	PatientID      string     `db:"patient_id" json:"patientId"`
	Vaccine        string     `db:"vaccine" json:"vaccine"`
	DueDate        time.Time  `db:"due_date" json:"dueDate"`
	AdministeredAt *time.Time `db:"administered_at" json:"administeredAt,omitempty"`
	AdministeredBy *UserID    `db:"administered_by" json:"administeredBy,omitempty"`
}
