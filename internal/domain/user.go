package domain

import "time"

type UserID int64

type Role string

const (
	RoleASHA     Role = "asha"
	RolePHCStaff Role = "phc_staff"
	RoleDoctor   Role = "doctor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleASHA, RolePHCStaff, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           UserID    `db:"id" json:"id"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"role" json:"role"`
	Village      *string   `db:"village" json:"village,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
