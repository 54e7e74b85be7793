package http

import (
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
)

type registerRequest struct {
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Village  *string `json:"village,omitempty"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"` // секунды жизни access-токена
}

type userResponse struct {
	ID      domain.UserID `json:"id"`
	Phone   string        `json:"phone"`
	Name    string        `json:"name"`
	Role    string        `json:"role"`
	Village *string       `json:"village,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Phone:   u.Phone,
		Name:    u.Name,
		Role:    string(u.Role),
		Village: u.Village,
	}
}

type patientRequest struct {
	Name    string  `json:"name"`
	DOB     string  `json:"dob"` // YYYY-MM-DD
	Sex     string  `json:"sex"`
	Phone   *string `json:"phone,omitempty"`
	Village string  `json:"village"`
	ABHAID  *string `json:"abhaId,omitempty"`
}

type patientResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	DOB     string  `json:"dob"`
	Sex     string  `json:"sex"`
	Phone   *string `json:"phone,omitempty"`
	Village string  `json:"village"`
	ABHAID  *string `json:"abhaId,omitempty"`
}

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:      p.ID,
		Name:    p.Name,
		DOB:     p.DOB.Format("2006-01-02"),
		Sex:     p.Sex,
		Phone:   p.Phone,
		Village: p.Village,
		ABHAID:  p.ABHAID,
	}
}

type patientListResponse struct {
	Patients   []patientResponse `json:"patients"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type taskRequest struct {
	WorkerID  domain.UserID `json:"workerId"`
	PatientID string        `json:"patientId"`
	Kind      string        `json:"kind"`
	DueDate   string        `json:"dueDate"` // YYYY-MM-DD
	Notes     *string       `json:"notes,omitempty"`
}

type completeTaskRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type pregnancyRequest struct {
	PatientID string `json:"patientId"`
	LMP       string `json:"lmp"` // YYYY-MM-DD
	HighRisk  bool   `json:"highRisk"`
}

type pregnancyResponse struct {
	Pregnancy *domain.Pregnancy   `json:"pregnancy"`
	Checkups  []domain.ANCCheckup `json:"checkups"`
}

type checkupRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type enrollChildRequest struct {
	PatientID string `json:"patientId"`
	DOB       string `json:"dob"` // YYYY-MM-DD
}

type appointmentRequest struct {
	PatientID   string        `json:"patientId"`
	DoctorID    domain.UserID `json:"doctorId"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	Reason      string        `json:"reason"`
}

type prescriptionRequest struct {
	PatientID string                    `json:"patientId"`
	Lines     []domain.PrescriptionLine `json:"lines"`
	Advice    *string                   `json:"advice,omitempty"`
}

type bloodUpsertRequest struct {
	Facility string `json:"facility"`
	Group    string `json:"group"`
	Units    int    `json:"units"`
}

type bloodAdjustRequest struct {
	Facility string `json:"facility"`
	Group    string `json:"group"`
	Delta    int    `json:"delta"`
}

type alertRequest struct {
	Kind      string  `json:"kind"`
	PatientID *string `json:"patientId,omitempty"`
	Message   string  `json:"message"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
