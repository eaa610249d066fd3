package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	user := &domain.User{ID: "user-1", Email: "carlos@example.com", Role: domain.RoleClient}

	token, exp, err := tm.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(5*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "carlos@example.com", claims.Email)
	require.Equal(t, domain.RoleClient, claims.Role)
	require.NotEmpty(t, claims.ID)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	other := NewTokenManager("different", 5)
	user := &domain.User{ID: "user-1", Email: "carlos@example.com", Role: domain.RoleClient}

	token, _, err := tm.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	user := &domain.User{ID: "user-1", Email: "carlos@example.com", Role: domain.RoleClient}

	first, _, err := tm.GenerateToken(user)
	require.NoError(t, err)
	second, _, err := tm.GenerateToken(user)
	require.NoError(t, err)

	firstClaims, err := tm.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := tm.ParseToken(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
