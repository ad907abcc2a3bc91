package auth

import "github.com/hr-core/hr-core-go/internal/domain/employee"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// RoleFor derives the role from the employee record: a record with no
// supervisor is an administrator. The role is computed once at login and
// carried in the session token from then on, never re-derived per check.
func RoleFor(e employee.Employee) Role {
	if e.SupervisorID == nil {
		return RoleAdmin
	}
	return RoleEmployee
}

// Session is the single persisted pointer to the authenticated employee.
// Its absence means logged out.
type Session struct {
	UserID string `json:"userId"`
}
