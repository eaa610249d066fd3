package dto

import "time"

// CreateCategoryRequest payload.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest payload.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse response.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateClientRequest payload.
type CreateClientRequest struct {
	Name         string  `json:"name"`
	Company      *string `json:"company"`
	ContactEmail string  `json:"contact_email"`
	UserID       string  `json:"user_id"`
}

// UpdateClientRequest payload.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Company      *string `json:"company"`
	ContactEmail *string `json:"contact_email"`
}

// ClientResponse response.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Company      *string   `json:"company"`
	ContactEmail string    `json:"contact_email"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateTechnicianRequest payload.
type CreateTechnicianRequest struct {
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	Availability *bool  `json:"availability"`
	UserID       string `json:"user_id"`
}

// UpdateTechnicianRequest payload.
type UpdateTechnicianRequest struct {
	Name         *string `json:"name"`
	Specialty    *string `json:"specialty"`
	Availability *bool   `json:"availability"`
}

// TechnicianResponse response.
type TechnicianResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Availability bool      `json:"availability"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
