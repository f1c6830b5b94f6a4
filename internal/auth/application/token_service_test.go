package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/storefront/internal/auth/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", "storefront", time.Hour)

	token, expiresAt, err := svc.Issue("u1", "jane@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	principal, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", principal.UserID)
	assert.Equal(t, "jane@example.com", principal.Email)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestTokenService_Verify_Invalid(t *testing.T) {
	svc := NewTokenService("test-secret", "storefront", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", "storefront", time.Hour)
		token, _, err := other.Issue("u1", "jane@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", "storefront", -time.Minute)
		token, _, err := expired.Issue("u1", "jane@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenService_RegularUserIsNotAdmin(t *testing.T) {
	svc := NewTokenService("test-secret", "storefront", time.Hour)

	token, _, err := svc.Issue("u1", "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.False(t, principal.IsAdmin())
}
