package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/pkg/jwt"
	"github.com/hr-core/hr-core-go/internal/store"
)

type AuthServiceImpl struct {
	store *store.Store
	jwt.Service
}

func NewAuthService(st *store.Store, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		store:   st,
		Service: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, role, err := a.store.Login(req.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	modules := auth.VisibleModules(role, emp.AccessibleModules)
	moduleIDs := make([]string, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.ID)
	}

	token, expiresAt, err := a.Service.GenerateSessionToken(emp.ID, role, moduleIDs)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  emp,
		Role:      role,
		Modules:   modules,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.store.Logout()
	if token != "" {
		a.Service.Revoke(token)
	}
	return nil
}

// Session implements auth.AuthService. The employee referenced by the token
// may have been removed from the directory since the token was issued; that
// case reads as an unauthenticated session rather than an error.
func (a *AuthServiceImpl) Session(ctx context.Context) (auth.SessionResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return auth.SessionResponse{Authenticated: false}, nil
	}

	emp, err := a.store.EmployeeByID(employeeID)
	if err != nil {
		return auth.SessionResponse{Authenticated: false}, nil
	}

	role := auth.RoleFor(emp)
	return auth.SessionResponse{
		Authenticated: true,
		Employee:      &emp,
		Role:          role,
		Modules:       auth.VisibleModules(role, emp.AccessibleModules),
	}, nil
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrEmployeeIDClaimMissing
	}
	return employeeID, nil
}
