package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/pkg/jwt"
	"github.com/hr-core/hr-core-go/internal/pkg/kvstore"
	"github.com/hr-core/hr-core-go/internal/store"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testSessionExp = "1h"

	// Stable IDs from the seed dataset.
	seedAdminID    = "6512bd43-d9ca-4e9c-b67a-2d97bd1c7a44"
	seedEmployeeID = "8f14e45f-ceea-467f-9f4d-0c1a51a1b6e2"
)

func newTestService(t *testing.T) (auth.AuthService, jwt.Service, *store.Store) {
	t.Helper()

	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	st := store.New(kv)
	jwtService := jwt.NewJWTService(testSecret, testSessionExp)
	return NewAuthService(st, jwtService), jwtService, st
}

// sessionContext builds a request context carrying a decoded session token,
// the shape the Verifier middleware produces.
func sessionContext(t *testing.T, jwtService jwt.Service, employeeID string, role auth.Role, modules []string) context.Context {
	t.Helper()

	tokenString, _, err := jwtService.GenerateSessionToken(employeeID, role, modules)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestLoginAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: seedAdminID})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, auth.RoleAdmin, resp.Role)
	assert.Equal(t, "Alice Johnson", resp.Employee.Name)

	// Admins see the full registry regardless of their allow-list.
	moduleIDs := make([]string, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		moduleIDs = append(moduleIDs, m.ID)
	}
	assert.Contains(t, moduleIDs, auth.ModuleEmployees)
	assert.Contains(t, moduleIDs, auth.ModuleReporting)
}

func TestLoginEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: seedEmployeeID})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleEmployee, resp.Role)

	moduleIDs := make([]string, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		moduleIDs = append(moduleIDs, m.ID)
	}
	assert.Contains(t, moduleIDs, auth.ModuleDashboard)
	assert.Contains(t, moduleIDs, auth.ModuleAttendance)
	assert.NotContains(t, moduleIDs, auth.ModuleEmployees)
	assert.NotContains(t, moduleIDs, auth.ModuleReporting)
}

func TestLoginUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "no-such-id"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLoginValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, jwtService, st := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: seedEmployeeID})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	assert.True(t, jwtService.IsRevoked(resp.Token))
	_, ok := st.CurrentUser()
	assert.False(t, ok)
}

func TestSession(t *testing.T) {
	svc, jwtService, _ := newTestService(t)

	ctx := sessionContext(t, jwtService, seedEmployeeID, auth.RoleEmployee, nil)

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	require.NotNil(t, sess.Employee)
	assert.Equal(t, "John Doe", sess.Employee.Name)
	assert.Equal(t, auth.RoleEmployee, sess.Role)
}

func TestSessionDanglingEmployee(t *testing.T) {
	svc, jwtService, _ := newTestService(t)

	ctx := sessionContext(t, jwtService, "e0f0a0b0-0000-0000-0000-000000000000", auth.RoleEmployee, nil)

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)
	assert.Nil(t, sess.Employee)
}

func TestSessionWithoutToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	sess, err := svc.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)
}
