package response

import (
	"errors"
	"net/http"

	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/pkg/advisory"
	"github.com/hr-core/hr-core-go/internal/pkg/validator"
	"github.com/hr-core/hr-core-go/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session token")
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrEmployeeIDClaimMissing):
		Unauthorized(w, "Invalid session token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")
	case errors.Is(err, auth.ErrModuleAccessDenied):
		Forbidden(w, "Module access denied")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Advisory errors
	case errors.Is(err, advisory.ErrDisabled):
		ServiceUnavailable(w, "Advisory service is not configured")
	case errors.Is(err, advisory.ErrUnavailable):
		ServiceUnavailable(w, "Advisory service is unavailable")

	// Persistence errors
	case errors.Is(err, store.ErrNotPersisted):
		InternalServerError(w, "Failed to persist changes")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
