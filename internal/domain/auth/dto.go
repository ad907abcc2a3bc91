package auth

import (
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/pkg/validator"
)

// LoginRequest identifies the employee to log in as. There is no credential
// to verify; authentication is a directory lookup by identifier.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
	Employee  employee.Employee `json:"employee"`
	Role      Role              `json:"role"`
	Modules   []Module          `json:"modules"`
}

type SessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	Employee      *employee.Employee `json:"employee,omitempty"`
	Role          Role               `json:"role,omitempty"`
	Modules       []Module           `json:"modules,omitempty"`
}
