package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// TechnicianService handles the technician catalog.
type TechnicianService struct {
	technicians repository.TechnicianRepository
	users       repository.UserRepository
}

// TechnicianCreateInput describes technician creation payload.
type TechnicianCreateInput struct {
	Name         string
	Specialty    string
	Availability *bool
	UserID       string
}

// TechnicianUpdateInput describes a partial technician update.
type TechnicianUpdateInput struct {
	Name         *string
	Specialty    *string
	Availability *bool
}

// NewTechnicianService builds the service.
func NewTechnicianService(technicians repository.TechnicianRepository, users repository.UserRepository) *TechnicianService {
	return &TechnicianService{technicians: technicians, users: users}
}

// Create persists a technician profile bound to a TECHNICIAN-role user.
func (s *TechnicianService) Create(ctx context.Context, input TechnicianCreateInput) (*domain.Technician, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": input.UserID})
		}
		return nil, apperrors.MapError(err)
	}
	if user.Role != domain.RoleTechnician {
		return nil, apperrors.NewRoleMismatch("user must have the TECHNICIAN role", map[string]any{
			"user_id": user.ID,
			"role":    user.Role,
		})
	}

	technician := &domain.Technician{
		Name:         input.Name,
		Specialty:    input.Specialty,
		Availability: true,
		UserID:       input.UserID,
	}
	if input.Availability != nil {
		technician.Availability = *input.Availability
	}
	if err := s.technicians.Create(ctx, technician); err != nil {
		return nil, apperrors.MapError(err)
	}
	return technician, nil
}

// Get fetches a technician by id.
func (s *TechnicianService) Get(ctx context.Context, id string) (*domain.Technician, error) {
	technician, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("technician", map[string]any{"technician_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return technician, nil
}

// List returns all technicians.
func (s *TechnicianService) List(ctx context.Context) ([]domain.Technician, error) {
	technicians, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return technicians, nil
}

// Update applies a partial technician update.
func (s *TechnicianService) Update(ctx context.Context, id string, input TechnicianUpdateInput) (*domain.Technician, error) {
	technician, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		technician.Name = *input.Name
	}
	if input.Specialty != nil {
		technician.Specialty = *input.Specialty
	}
	if input.Availability != nil {
		technician.Availability = *input.Availability
	}
	if err := s.technicians.Update(ctx, technician); err != nil {
		return nil, apperrors.MapError(err)
	}
	return technician, nil
}

// Remove deletes a technician profile. Tickets it held stay behind with the
// reference cleared via the set-null rule.
func (s *TechnicianService) Remove(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.technicians.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("technician", map[string]any{"technician_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
