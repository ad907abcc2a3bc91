package leave

import "github.com/hr-core/hr-core-go/internal/pkg/validator"

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       Type   `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	switch r.Type {
	case TypeVacation, TypeSick, TypePersonal:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be Vacation, Sick Leave or Personal",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	// Pending is the creation-only state; reviewers move requests out of it.
	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdviceRequest feeds the leave-availability advisory. It shares the create
// request's shape because advice is requested while the form is being filled.
type AdviceRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       Type   `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *AdviceRequest) Validate() error {
	req := CreateLeaveRequestRequest{
		EmployeeID: r.EmployeeID,
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
	return req.Validate()
}

// AdviceResponse carries the advisory verdict back to the form. Degraded is
// set when the upstream service could not be reached and no verdict exists;
// the request may still be submitted.
type AdviceResponse struct {
	Verdict  string `json:"verdict"`
	Message  string `json:"message"`
	Degraded bool   `json:"degraded"`
}
