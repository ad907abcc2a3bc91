package attendance

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/store"
)

type AttendanceServiceImpl struct {
	store *store.Store
}

func NewAttendanceService(st *store.Store) attendance.AttendanceService {
	return &AttendanceServiceImpl{store: st}
}

// TimeRecordsForDate implements attendance.AttendanceService. An empty date
// means today.
func (s *AttendanceServiceImpl) TimeRecordsForDate(ctx context.Context, date string) ([]attendance.TimeRecord, error) {
	if date == "" {
		date = today()
	}
	return s.store.TimeRecordsForDate(date), nil
}

// ListSchedules implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListSchedules(ctx context.Context) ([]attendance.EmployeeSchedule, error) {
	return s.store.Schedules(), nil
}

// ListActiveSchedules implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListActiveSchedules(ctx context.Context) ([]attendance.EmployeeSchedule, error) {
	return s.store.ActiveSchedules(), nil
}

// ListInactiveSchedules implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListInactiveSchedules(ctx context.Context) ([]attendance.EmployeeSchedule, error) {
	return s.store.InactiveSchedules(), nil
}

// ScheduleFor implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ScheduleFor(ctx context.Context, employeeID string) (attendance.EmployeeSchedule, error) {
	return s.store.ScheduleFor(employeeID)
}

// MyAttendance implements attendance.AttendanceService. Missing schedule or
// punch are normal states, not errors; the card renders placeholders.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context) (attendance.MyAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	resp := attendance.MyAttendanceResponse{Date: today()}

	if schedule, err := s.store.ScheduleFor(employeeID); err == nil {
		resp.Schedule = &schedule
	}
	if record, ok := s.store.TimeRecordFor(employeeID, resp.Date); ok {
		resp.TodayRecord = &record
	}

	return resp, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrEmployeeIDClaimMissing
	}
	return employeeID, nil
}
