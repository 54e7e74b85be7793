package domain

import "time"

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodGroup(g string) bool {
	for _, b := range BloodGroups {
		if b == g {
			return true
		}
	}
	return false
}

// BloodStock — запас крови по группе в пределах одного пункта.
type BloodStock struct {
	Facility  string    `db:"facility" json:"facility"`
	Group     string    `db:"blood_group" json:"group"`
	Units     int       `db:"units" json:"units"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
