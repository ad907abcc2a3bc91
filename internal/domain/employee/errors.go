package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("status must be Active or Inactive")
	ErrInvalidGender    = errors.New("invalid gender value")
)
