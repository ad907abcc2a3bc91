package attendance

import (
	"context"
)

type AttendanceService interface {
	TimeRecordsForDate(ctx context.Context, date string) ([]TimeRecord, error)
	ListSchedules(ctx context.Context) ([]EmployeeSchedule, error)
	ListActiveSchedules(ctx context.Context) ([]EmployeeSchedule, error)
	ListInactiveSchedules(ctx context.Context) ([]EmployeeSchedule, error)
	ScheduleFor(ctx context.Context, employeeID string) (EmployeeSchedule, error)
	MyAttendance(ctx context.Context) (MyAttendanceResponse, error)
}

// MyAttendanceResponse bundles the signed-in employee's schedule with the
// day's punch, the shape the profile attendance card renders.
type MyAttendanceResponse struct {
	Schedule    *EmployeeSchedule `json:"schedule"`
	TodayRecord *TimeRecord       `json:"todayRecord"`
	Date        string            `json:"date"`
}
