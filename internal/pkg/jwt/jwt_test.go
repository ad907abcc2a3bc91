package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
)

func TestGenerateSessionToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "24h")

	token, expiresAt, err := svc.GenerateSessionToken("emp-1", auth.RoleAdmin, []string{"dashboard", "employees"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	employeeID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, "emp-1", employeeID)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "Admin", role)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "session", tokenType)

	modules, ok := decoded.Get("modules")
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"dashboard", "employees"}, modules)
}

func TestGenerateSessionTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateSessionToken("emp-1", auth.RoleEmployee, nil)
	assert.Error(t, err)
}

func TestRevoke(t *testing.T) {
	svc := NewJWTService("test-secret-key", "24h")

	token, _, err := svc.GenerateSessionToken("emp-1", auth.RoleEmployee, nil)
	require.NoError(t, err)

	assert.False(t, svc.IsRevoked(token))
	svc.Revoke(token)
	assert.True(t, svc.IsRevoked(token))
}
