package domain

import "time"

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID          string            `db:"id" json:"id"`
	PatientID   string            `db:"patient_id" json:"patientId"`
	DoctorID    UserID            `db:"doctor_id" json:"doctorId"`
	ScheduledAt time.Time         `db:"scheduled_at" json:"scheduledAt"`
	Reason      string            `db:"reason" json:"reason"`
	Status      AppointmentStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
}
