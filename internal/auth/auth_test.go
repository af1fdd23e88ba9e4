package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := m.Generate(accountID, "alice@example.com", RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestJWTManagerRejectsBadTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.Generate(uuid.New(), "x@x.com", RoleProvider)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(uuid.New(), "x@x.com", RoleCustomer)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.Error(t, err)
	})
}
