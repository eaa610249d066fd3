package domain

import "time"

// Role enumerates the access levels an account can hold.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleClient     Role = "CLIENT"
	RoleTechnician Role = "TECHNICIAN"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleTechnician:
		return true
	}
	return false
}

// User is an account that can authenticate against the service. Depending on
// its role it may own a Client or a Technician profile, never both.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
