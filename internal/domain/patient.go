package domain

import "time"

type Patient struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	DOB       time.Time  `db:"dob" json:"dob"`
	Sex       string     `db:"sex" json:"sex"` // f|m|o
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Village   string     `db:"village" json:"village"`
	ABHAID    *string    `db:"abha_id" json:"abhaId,omitempty"` // национальный health id, опционален
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
