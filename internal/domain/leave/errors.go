package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveType     = errors.New("leave type must be Vacation, Sick Leave or Personal")
	ErrInvalidStatus        = errors.New("leave status must be Pending, Approved or Rejected")
)
