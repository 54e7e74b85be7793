package domain

import "time"

type AlertKind string

const (
	AlertSOS       AlertKind = "sos"
	AlertHighRisk  AlertKind = "high_risk"
	AlertStockout  AlertKind = "stockout"
)

type Alert struct {
	ID         string     `db:"id" json:"id"`
	Kind       AlertKind  `db:"kind" json:"kind"`
	PatientID  *string    `db:"patient_id" json:"patientId,omitempty"`
	RaisedBy   UserID     `db:"raised_by" json:"raisedBy"`
	Message    string     `db:"message" json:"message"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolvedAt,omitempty"`
	ResolvedBy *UserID    `db:"resolved_by" json:"resolvedBy,omitempty"`
}
