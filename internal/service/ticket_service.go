package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// technicianWorkloadLimit caps how many tickets a technician may hold in
// IN_PROGRESS status at once. Checked at assignment time only.
const technicianWorkloadLimit = 5

// allowedTransitions is the fixed forward-only status sequence. CLOSED is
// terminal.
var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusOpen:       {domain.TicketStatusInProgress},
	domain.TicketStatusInProgress: {domain.TicketStatusResolved},
	domain.TicketStatusResolved:   {domain.TicketStatusClosed},
	domain.TicketStatusClosed:     {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TicketService coordinates the ticket lifecycle: creation against the
// catalog, the status state machine, and the technician workload constraint.
type TicketService struct {
	tickets     repository.TicketRepository
	categories  repository.CategoryRepository
	clients     repository.ClientRepository
	technicians repository.TechnicianRepository
	dispatcher  events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	CategoryRepo   repository.CategoryRepository
	ClientRepo     repository.ClientRepository
	TechnicianRepo repository.TechnicianRepository
	Dispatcher     events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title        string
	Description  string
	Priority     domain.TicketPriority
	CategoryID   string
	ClientID     string
	TechnicianID *string
}

// TicketUpdateInput describes a partial ticket update. Nil fields are left
// unchanged. Status is never mutated through this path.
type TicketUpdateInput struct {
	Title        *string
	Description  *string
	Priority     *domain.TicketPriority
	CategoryID   *string
	TechnicianID *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		categories:  deps.CategoryRepo,
		clients:     deps.ClientRepo,
		technicians: deps.TechnicianRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Create validates the referenced catalog entities and persists a new ticket.
// Status is always OPEN; priority defaults to MEDIUM.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"category_id": input.CategoryID})
		}
		return nil, apperrors.MapError(err)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"client_id": input.ClientID})
		}
		return nil, apperrors.MapError(err)
	}
	if input.TechnicianID != nil {
		if _, err := s.technicians.GetByID(ctx, *input.TechnicianID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("technician", map[string]any{"technician_id": *input.TechnicianID})
			}
			return nil, apperrors.MapError(err)
		}
		if err := s.validateTechnicianWorkload(ctx, *input.TechnicianID); err != nil {
			return nil, err
		}
	}

	ticket := &domain.Ticket{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Status:       domain.TicketStatusOpen,
		Priority:     input.Priority,
		CategoryID:   input.CategoryID,
		ClientID:     input.ClientID,
		TechnicianID: input.TechnicianID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			CategoryID:   ticket.CategoryID,
			ClientID:     ticket.ClientID,
			TechnicianID: ticket.TechnicianID,
			Priority:     ticket.Priority,
			Title:        ticket.Title,
		},
	})
	return ticket, nil
}

// Get fetches a ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// List returns all tickets, newest first.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// ListByClient returns the client's tickets, newest first. The client must
// exist.
func (s *TicketService) ListByClient(ctx context.Context, clientID string) ([]domain.Ticket, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"client_id": clientID})
		}
		return nil, apperrors.MapError(err)
	}
	tickets, err := s.tickets.ListByClient(ctx, clientID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// ListByTechnician returns the technician's tickets, newest first. The
// technician must exist.
func (s *TicketService) ListByTechnician(ctx context.Context, technicianID string) ([]domain.Ticket, error) {
	if _, err := s.technicians.GetByID(ctx, technicianID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("technician", map[string]any{"technician_id": technicianID})
		}
		return nil, apperrors.MapError(err)
	}
	tickets, err := s.tickets.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Update applies a partial field update. A category change must resolve; a
// change to a different technician must resolve and pass the workload check.
// Reassigning the technician the ticket already has skips the check.
func (s *TicketService) Update(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("category", map[string]any{"category_id": *input.CategoryID})
			}
			return nil, apperrors.MapError(err)
		}
		ticket.CategoryID = *input.CategoryID
	}

	oldTechnician := ticket.TechnicianID
	if input.TechnicianID != nil {
		if _, err := s.technicians.GetByID(ctx, *input.TechnicianID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("technician", map[string]any{"technician_id": *input.TechnicianID})
			}
			return nil, apperrors.MapError(err)
		}
		if oldTechnician == nil || *oldTechnician != *input.TechnicianID {
			if err := s.validateTechnicianWorkload(ctx, *input.TechnicianID); err != nil {
				return nil, err
			}
		}
		ticket.TechnicianID = input.TechnicianID
	}

	if input.Title != nil {
		ticket.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		ticket.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	if technicianChanged(oldTechnician, ticket.TechnicianID) {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			Payload: events.TicketAssignedPayload{
				OldTechnicianID: oldTechnician,
				NewTechnicianID: ticket.TechnicianID,
			},
		})
	}
	return ticket, nil
}

// UpdateStatus advances the ticket through the fixed status sequence. Any
// pair outside the transition table is rejected and the ticket is untouched.
func (s *TicketService) UpdateStatus(ctx context.Context, id string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(ticket.Status, newStatus) {
		return nil, apperrors.NewInvalidTransition(string(ticket.Status), string(newStatus))
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

// Remove deletes a ticket unconditionally.
func (s *TicketService) Remove(ctx context.Context, id string) error {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticket.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticket.ID,
		Payload:  events.TicketDeletedPayload{ClientID: ticket.ClientID},
	})
	return nil
}

// validateTechnicianWorkload rejects an assignment when the technician
// already holds the limit of IN_PROGRESS tickets. The count and the
// subsequent write are not serialized; concurrent assignments against the
// same technician can both pass with a count of limit-1.
func (s *TicketService) validateTechnicianWorkload(ctx context.Context, technicianID string) error {
	count, err := s.tickets.CountByTechnicianAndStatus(ctx, technicianID, domain.TicketStatusInProgress)
	if err != nil {
		return apperrors.MapError(err)
	}
	if count >= technicianWorkloadLimit {
		return apperrors.NewCapacityExceeded(technicianID, technicianWorkloadLimit)
	}
	return nil
}

func technicianChanged(old, new *string) bool {
	switch {
	case old == nil && new == nil:
		return false
	case old == nil || new == nil:
		return true
	default:
		return *old != *new
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
