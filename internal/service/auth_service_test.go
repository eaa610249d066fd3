package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeRevocationStore) {
	users := newFakeUserRepo()
	revocations := newFakeRevocationStore()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4,
	}}
	svc := NewAuthService(cfg, AuthDependencies{UserRepo: users, Revocations: revocations})
	return svc, users, revocations
}

func TestAuthRegister(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, "Carlos Gomez", "carlos@example.com", "password123", domain.RoleClient)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())
	require.NotEqual(t, "password123", user.PasswordHash)

	_, _, _, err = svc.Register(ctx, "Other", "carlos@example.com", "secret", domain.RoleClient)
	require.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestAuthLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Carlos Gomez", "carlos@example.com", "password123", domain.RoleClient)
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "carlos@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "carlos@example.com", user.Email)
	require.NotEmpty(t, token)

	// Unknown account and bad password produce the same answer.
	_, _, _, badPassword := svc.Login(ctx, "carlos@example.com", "wrong")
	_, _, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "password123")
	require.True(t, apperrors.IsCode(badPassword, "UNAUTHORIZED"))
	require.True(t, apperrors.IsCode(unknownEmail, "UNAUTHORIZED"))
	require.Equal(t, badPassword.Error(), unknownEmail.Error())
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	svc, _, revocations := newAuthFixture()
	ctx := context.Background()

	_, token, _, err := svc.Register(ctx, "Carlos Gomez", "carlos@example.com", "password123", domain.RoleClient)
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err := revocations.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)
}
