package domain

import "time"

// Technician is the resolver profile owned by a TECHNICIAN-role user. It is
// removed together with its user; tickets it held keep existing unassigned.
type Technician struct {
	ID           string
	Name         string
	Specialty    string
	Availability bool
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
