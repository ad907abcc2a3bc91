package employee

import "github.com/hr-core/hr-core-go/internal/pkg/validator"

// SaveEmployeeRequest carries a full employee record for both create and
// update. Updates replace the whole record; there is no partial patch.
type SaveEmployeeRequest struct {
	Name              string              `json:"name"`
	Position          string              `json:"position"`
	Department        string              `json:"department"`
	Email             string              `json:"email"`
	Avatar            string              `json:"avatar"`
	Status            Status              `json:"status"`
	Gender            Gender              `json:"gender"`
	SupervisorID      *string             `json:"supervisor_id"`
	Address           Address             `json:"address"`
	EmploymentHistory []EmploymentHistory `json:"employment_history"`
	Contracts         []Contract          `json:"contracts"`
	Performance       PerformanceSummary  `json:"performance"`
	LeaveCredits      LeaveCredits        `json:"leave_credits"`
	AccessibleModules []string            `json:"accessible_modules"`
}

func (r *SaveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if r.Status != StatusActive && r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	switch r.Gender {
	case Male, Female, Other, PreferNotToSay:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male, Female, Other or Prefer not to say",
		})
	}

	if r.SupervisorID != nil && !validator.IsValidUUID(*r.SupervisorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor_id must be a valid UUID",
		})
	}

	if r.LeaveCredits.Vacation < 0 || r.LeaveCredits.Sick < 0 || r.LeaveCredits.Personal < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_credits",
			Message: "leave credits must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds the employee record. The identifier is assigned by the
// store on create and carried by the caller on update.
func (r *SaveEmployeeRequest) ToEntity(id string) Employee {
	return Employee{
		ID:                id,
		Name:              r.Name,
		Position:          r.Position,
		Department:        r.Department,
		Email:             r.Email,
		Avatar:            r.Avatar,
		Status:            r.Status,
		Gender:            r.Gender,
		SupervisorID:      r.SupervisorID,
		Address:           r.Address,
		EmploymentHistory: r.EmploymentHistory,
		Contracts:         r.Contracts,
		Performance:       r.Performance,
		LeaveCredits:      r.LeaveCredits,
		AccessibleModules: r.AccessibleModules,
	}
}
