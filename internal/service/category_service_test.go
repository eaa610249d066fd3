package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

func TestCategoryNameUniqueness(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CategoryInput{Name: "Hardware Incident"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CategoryInput{Name: "Hardware Incident"})
	require.True(t, apperrors.IsCode(err, "CONFLICT"))

	second, err := svc.Create(ctx, CategoryInput{Name: "Software Incident"})
	require.NoError(t, err)

	// Renaming onto a taken name is rejected; renaming onto itself is fine.
	taken := first.Name
	_, err = svc.Update(ctx, second.ID, &taken, nil)
	require.True(t, apperrors.IsCode(err, "CONFLICT"))

	same := second.Name
	_, err = svc.Update(ctx, second.ID, &same, nil)
	require.NoError(t, err)
}

func TestCategoryRemoveBlockedByTickets(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	category, err := svc.Create(ctx, CategoryInput{Name: "Request"})
	require.NoError(t, err)

	// The restrict rule surfaces as a foreign key violation from the driver.
	repo.deleteErr = &pgconn.PgError{Code: "23503"}
	err = svc.Remove(ctx, category.ID)
	require.True(t, apperrors.IsCode(err, "CONFLICT"))

	repo.deleteErr = nil
	require.NoError(t, svc.Remove(ctx, category.ID))
	_, err = svc.Get(ctx, category.ID)
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}
