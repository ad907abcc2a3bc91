package assistant

import "github.com/hr-core/hr-core-go/internal/pkg/validator"

type AskRequest struct {
	Prompt string `json:"prompt"`
}

func (r *AskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Prompt) {
		errs = append(errs, validator.ValidationError{
			Field:   "prompt",
			Message: "prompt is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AskResponse struct {
	Answer string `json:"answer"`
}
