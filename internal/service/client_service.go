package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// ClientService handles the client catalog.
type ClientService struct {
	clients repository.ClientRepository
	users   repository.UserRepository
}

// ClientCreateInput describes client creation payload.
type ClientCreateInput struct {
	Name         string
	Company      *string
	ContactEmail string
	UserID       string
}

// ClientUpdateInput describes a partial client update.
type ClientUpdateInput struct {
	Name         *string
	Company      *string
	ContactEmail *string
}

// NewClientService builds the service.
func NewClientService(clients repository.ClientRepository, users repository.UserRepository) *ClientService {
	return &ClientService{clients: clients, users: users}
}

// Create persists a client profile bound to a CLIENT-role user.
func (s *ClientService) Create(ctx context.Context, input ClientCreateInput) (*domain.Client, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": input.UserID})
		}
		return nil, apperrors.MapError(err)
	}
	if user.Role != domain.RoleClient {
		return nil, apperrors.NewRoleMismatch("user must have the CLIENT role", map[string]any{
			"user_id": user.ID,
			"role":    user.Role,
		})
	}

	client := &domain.Client{
		Name:         input.Name,
		Company:      input.Company,
		ContactEmail: input.ContactEmail,
		UserID:       input.UserID,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return client, nil
}

// Get fetches a client by id.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"client_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return client, nil
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return clients, nil
}

// Update applies a partial client update.
func (s *ClientService) Update(ctx context.Context, id string, input ClientUpdateInput) (*domain.Client, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.ContactEmail != nil {
		client.ContactEmail = *input.ContactEmail
	}
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return client, nil
}

// Remove deletes a client profile. Its tickets are removed with it via the
// cascade rule.
func (s *ClientService) Remove(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
