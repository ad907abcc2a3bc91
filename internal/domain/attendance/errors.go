package attendance

import "errors"

var ErrScheduleNotFound = errors.New("employee schedule not found")
