package auth

import "errors"

var (
	ErrInvalidToken           = errors.New("invalid or expired session token")
	ErrNotAuthenticated       = errors.New("no authenticated session")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrModuleAccessDenied     = errors.New("module not accessible for this user")
	ErrEmployeeIDClaimMissing = errors.New("employee_id claim missing from token")
)
