package store

import (
	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
)

// Derived views are pure projections over the current snapshot, recomputed
// on every call. Nothing here is cached or persisted.

func (s *Store) ActiveEmployees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterEmployees(true)
}

func (s *Store) InactiveEmployees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterEmployees(false)
}

func (s *Store) filterEmployees(active bool) []employee.Employee {
	out := make([]employee.Employee, 0)
	for _, e := range s.employees {
		if e.IsActive() == active {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) activeEmployeeIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, e := range s.employees {
		if e.IsActive() {
			ids[e.ID] = struct{}{}
		}
	}
	return ids
}

// ActiveLeaveRequests returns requests belonging to currently active
// employees; InactiveLeaveRequests is the set complement, so requests from
// since-deactivated employees stay retrievable.
func (s *Store) ActiveLeaveRequests() []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLeaveRequests(true)
}

func (s *Store) InactiveLeaveRequests() []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLeaveRequests(false)
}

func (s *Store) filterLeaveRequests(active bool) []leave.LeaveRequest {
	activeIDs := s.activeEmployeeIDs()
	out := make([]leave.LeaveRequest, 0)
	for _, r := range s.leaveRequests {
		if _, ok := activeIDs[r.EmployeeID]; ok == active {
			out = append(out, r)
		}
	}
	return out
}

// LeaveRequestsFor scopes requests to a single employee, preserving the
// most-recent-first collection order.
func (s *Store) LeaveRequestsFor(employeeID string) []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]leave.LeaveRequest, 0)
	for _, r := range s.leaveRequests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) ActiveSchedules() []attendance.EmployeeSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterSchedules(true)
}

func (s *Store) InactiveSchedules() []attendance.EmployeeSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterSchedules(false)
}

func (s *Store) filterSchedules(active bool) []attendance.EmployeeSchedule {
	activeIDs := s.activeEmployeeIDs()
	out := make([]attendance.EmployeeSchedule, 0)
	for _, sch := range s.schedules {
		if _, ok := activeIDs[sch.EmployeeID]; ok == active {
			out = append(out, sch)
		}
	}
	return out
}

func (s *Store) ScheduleFor(employeeID string) (attendance.EmployeeSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sch := range s.schedules {
		if sch.EmployeeID == employeeID {
			return sch, nil
		}
	}
	return attendance.EmployeeSchedule{}, attendance.ErrScheduleNotFound
}

func (s *Store) TimeRecordsForDate(date string) []attendance.TimeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]attendance.TimeRecord, 0)
	for _, rec := range s.timeRecords {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) TimeRecordFor(employeeID, date string) (attendance.TimeRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.timeRecords {
		if rec.EmployeeID == employeeID && rec.Date == date {
			return rec, true
		}
	}
	return attendance.TimeRecord{}, false
}
