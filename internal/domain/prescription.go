package domain

import "time"

type Prescription struct {
	ID        string             `db:"id" json:"id"`
	PatientID string             `db:"patient_id" json:"patientId"`
	DoctorID  UserID             `db:"doctor_id" json:"doctorId"`
	Lines     []PrescriptionLine `db:"lines" json:"lines"` // хранится как jsonb
	Advice    *string            `db:"advice" json:"advice,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"createdAt"`
}

type PrescriptionLine struct {
	Drug     string `json:"drug"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}
