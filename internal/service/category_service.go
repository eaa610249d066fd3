package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// pgForeignKeyViolation is the SQLSTATE raised when a RESTRICT rule blocks a
// delete.
const pgForeignKeyViolation = "23503"

// CategoryService handles the category catalog.
type CategoryService struct {
	categories repository.CategoryRepository
}

// CategoryInput describes category payloads.
type CategoryInput struct {
	Name        string
	Description *string
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create persists a new category with a unique name.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if _, err := s.categories.GetByName(ctx, input.Name); err == nil {
		return nil, apperrors.NewConflict("a category with that name already exists", map[string]any{"name": input.Name})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"category_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// Update applies a partial category update, re-checking name uniqueness.
func (s *CategoryService) Update(ctx context.Context, id string, name *string, description *string) (*domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != category.Name {
		existing, err := s.categories.GetByName(ctx, *name)
		if err == nil && existing.ID != id {
			return nil, apperrors.NewConflict("a category with that name already exists", map[string]any{"name": *name})
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
		category.Name = *name
	}
	if description != nil {
		category.Description = description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// Remove deletes a category. Deletion is blocked while any ticket references
// it; the FK restrict rule surfaces here as a Conflict.
func (s *CategoryService) Remove(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category", map[string]any{"category_id": id})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflict("category is referenced by existing tickets", map[string]any{"category_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
