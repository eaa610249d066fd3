package domain

import "time"

// Client is the requester profile owned by a CLIENT-role user. It is removed
// together with its user, and its tickets are removed with it.
type Client struct {
	ID           string
	Name         string
	Company      *string
	ContactEmail string
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
