package domain

import "time"

// Category classifies tickets. Names are unique; a category cannot be deleted
// while tickets reference it.
type Category struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
