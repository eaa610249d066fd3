package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload. Status cannot be set by the caller.
type CreateTicketRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Priority     domain.TicketPriority `json:"priority"`
	CategoryID   string                `json:"category_id"`
	ClientID     string                `json:"client_id"`
	TechnicianID *string               `json:"technician_id"`
}

// UpdateTicketRequest payload; nil fields are left unchanged. Status changes
// go through the dedicated status endpoint.
type UpdateTicketRequest struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	Priority     *domain.TicketPriority `json:"priority"`
	CategoryID   *string                `json:"category_id"`
	TechnicianID *string                `json:"technician_id"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketResponse response.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	CategoryID   string                `json:"category_id"`
	ClientID     string                `json:"client_id"`
	TechnicianID *string               `json:"technician_id"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
