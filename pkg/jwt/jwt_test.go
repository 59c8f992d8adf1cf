package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := NewManager("test-secret", 15)

	token, expiresAt, err := m.GenerateToken("user-1", "melissa@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "melissa@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", 15).GenerateToken("user-1", "a@b.com", "admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 15).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := NewManager("secret", 15).VerifyToken("not-a-jwt")
	assert.Error(t, err)
}
