// Package store holds every entity collection plus session state in memory,
// backed by the key-value snapshot adapter. It is constructed once at
// application start and injected into the services that consume it.
package store

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/domain/performance"
	"github.com/hr-core/hr-core-go/internal/domain/recruitment"
	"github.com/hr-core/hr-core-go/internal/pkg/kvstore"
)

// Storage keys, one per collection plus the session pointer. These are the
// persisted layout and must stay stable.
const (
	keyEmployees          = "hr_core_employees"
	keyJobPostings        = "hr_core_job_postings"
	keyOnboardingPlans    = "hr_core_onboarding_plans"
	keyPerformanceReviews = "hr_core_performance_reviews"
	keyLeaveRequests      = "hr_core_leave_requests"
	keyTimeRecords        = "hr_core_time_records"
	keySchedules          = "hr_core_schedules"
	keySession            = "hr_core_session"
)

var ErrNotPersisted = errors.New("state changed in memory but could not be persisted")

// Store is safe for concurrent readers and writers. Mutations follow a
// copy-on-write discipline: the affected collection is replaced wholesale,
// existing elements are never mutated in place, and the new collection is
// written through the adapter before the mutation returns. Writers in other
// processes are not coordinated; last writer wins.
type Store struct {
	mu sync.RWMutex
	kv *kvstore.Store

	employees          []employee.Employee
	jobPostings        []recruitment.JobPosting
	onboardingPlans    []recruitment.OnboardingPlan
	performanceReviews []performance.PerformanceReview
	leaveRequests      []leave.LeaveRequest
	timeRecords        []attendance.TimeRecord
	schedules          []attendance.EmployeeSchedule

	currentUser   *employee.Employee
	userRole      auth.Role
	authenticated bool
}

// New seeds each collection from the adapter, with the bundled dataset as the
// read default, then persists the result so a first run materializes the seed
// on disk. A previously persisted session pointer is restored by re-running
// Login; a dangling pointer is discarded.
func New(kv *kvstore.Store) *Store {
	seed := loadSeed()

	s := &Store{
		kv:                 kv,
		employees:          kvstore.ReadOr(kv, keyEmployees, seed.Employees),
		jobPostings:        kvstore.ReadOr(kv, keyJobPostings, seed.JobPostings),
		onboardingPlans:    kvstore.ReadOr(kv, keyOnboardingPlans, seed.OnboardingPlans),
		performanceReviews: kvstore.ReadOr(kv, keyPerformanceReviews, seed.PerformanceReviews),
		leaveRequests:      kvstore.ReadOr(kv, keyLeaveRequests, seed.LeaveRequests),
		timeRecords:        kvstore.ReadOr(kv, keyTimeRecords, seed.TimeRecords),
		schedules:          kvstore.ReadOr(kv, keySchedules, seed.Schedules),
	}

	s.persistAll()

	if session, err := kvstore.Read[auth.Session](kv, keySession); err == nil {
		if _, _, err := s.Login(session.UserID); err != nil {
			slog.Warn("discarding stale session pointer", "user_id", session.UserID)
			if err := kv.Remove(keySession); err != nil {
				slog.Error("failed to remove stale session pointer", "error", err)
			}
		}
	}

	return s
}

func (s *Store) persistAll() {
	persist := func(key string, write func() error) {
		if err := write(); err != nil {
			slog.Error("failed to persist collection", "key", key, "error", err)
		}
	}
	persist(keyEmployees, func() error { return kvstore.Write(s.kv, keyEmployees, s.employees) })
	persist(keyJobPostings, func() error { return kvstore.Write(s.kv, keyJobPostings, s.jobPostings) })
	persist(keyOnboardingPlans, func() error { return kvstore.Write(s.kv, keyOnboardingPlans, s.onboardingPlans) })
	persist(keyPerformanceReviews, func() error { return kvstore.Write(s.kv, keyPerformanceReviews, s.performanceReviews) })
	persist(keyLeaveRequests, func() error { return kvstore.Write(s.kv, keyLeaveRequests, s.leaveRequests) })
	persist(keyTimeRecords, func() error { return kvstore.Write(s.kv, keyTimeRecords, s.timeRecords) })
	persist(keySchedules, func() error { return kvstore.Write(s.kv, keySchedules, s.schedules) })
}

// ---- Employees ----

// AddEmployee assigns a fresh identifier, appends the record and persists the
// collection. The created record is returned.
func (s *Store) AddEmployee(e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	next := make([]employee.Employee, 0, len(s.employees)+1)
	next = append(next, s.employees...)
	next = append(next, e)
	s.employees = next

	if err := kvstore.Write(s.kv, keyEmployees, s.employees); err != nil {
		return e, errors.Join(ErrNotPersisted, err)
	}
	return e, nil
}

// UpdateEmployee replaces the record whose identifier matches. A miss leaves
// the collection untouched and reports ErrEmployeeNotFound.
func (s *Store) UpdateEmployee(e employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.employees, func(cur employee.Employee) bool { return cur.ID == e.ID })
	if idx < 0 {
		return employee.ErrEmployeeNotFound
	}

	next := slices.Clone(s.employees)
	next[idx] = e
	s.employees = next

	// A replaced record may refresh the session's view of the current user.
	if s.currentUser != nil && s.currentUser.ID == e.ID {
		s.currentUser = &e
	}

	if err := kvstore.Write(s.kv, keyEmployees, s.employees); err != nil {
		return errors.Join(ErrNotPersisted, err)
	}
	return nil
}

func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employees)
}

func (s *Store) EmployeeByID(id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// ---- Leave requests ----

// AddLeaveRequest assigns a fresh identifier, forces the status to Pending
// regardless of what the caller passed, denormalizes the employee name and
// prepends the record so reads are most-recent-first.
func (s *Store) AddLeaveRequest(r leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string
	found := false
	for _, e := range s.employees {
		if e.ID == r.EmployeeID {
			name = e.Name
			found = true
			break
		}
	}
	if !found {
		return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
	}

	r.ID = uuid.NewString()
	r.EmployeeName = name
	r.Status = leave.StatusPending

	next := make([]leave.LeaveRequest, 0, len(s.leaveRequests)+1)
	next = append(next, r)
	next = append(next, s.leaveRequests...)
	s.leaveRequests = next

	if err := kvstore.Write(s.kv, keyLeaveRequests, s.leaveRequests); err != nil {
		return r, errors.Join(ErrNotPersisted, err)
	}
	return r, nil
}

// UpdateLeaveRequestStatus replaces the status of the matching request and
// nothing else. A miss leaves the collection untouched and reports
// ErrLeaveRequestNotFound.
func (s *Store) UpdateLeaveRequestStatus(id string, status leave.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.leaveRequests, func(r leave.LeaveRequest) bool { return r.ID == id })
	if idx < 0 {
		return leave.ErrLeaveRequestNotFound
	}

	next := slices.Clone(s.leaveRequests)
	next[idx].Status = status
	s.leaveRequests = next

	if err := kvstore.Write(s.kv, keyLeaveRequests, s.leaveRequests); err != nil {
		return errors.Join(ErrNotPersisted, err)
	}
	return nil
}

func (s *Store) LeaveRequests() []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leaveRequests)
}

func (s *Store) LeaveRequestByID(id string) (leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.leaveRequests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// ---- Read-only collections ----

func (s *Store) JobPostings() []recruitment.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobPostings)
}

func (s *Store) OnboardingPlans() []recruitment.OnboardingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.onboardingPlans)
}

func (s *Store) PerformanceReviews() []performance.PerformanceReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.performanceReviews)
}

func (s *Store) TimeRecords() []attendance.TimeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.timeRecords)
}

func (s *Store) Schedules() []attendance.EmployeeSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.schedules)
}

// ---- Session ----

// Login resolves the employee, derives the role from the supervisor link and
// persists the session pointer. An unknown identifier changes nothing.
func (s *Store) Login(employeeID string) (employee.Employee, auth.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == employeeID {
			user := e
			s.currentUser = &user
			s.userRole = auth.RoleFor(user)
			s.authenticated = true

			if err := kvstore.Write(s.kv, keySession, auth.Session{UserID: user.ID}); err != nil {
				slog.Error("failed to persist session pointer", "error", err)
			}
			return user, s.userRole, nil
		}
	}
	return employee.Employee{}, "", employee.ErrEmployeeNotFound
}

// Logout clears the session state and removes the persisted pointer.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = nil
	s.userRole = ""
	s.authenticated = false

	if err := s.kv.Remove(keySession); err != nil {
		slog.Error("failed to remove session pointer", "error", err)
	}
}

func (s *Store) CurrentUser() (employee.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return employee.Employee{}, false
	}
	return *s.currentUser, true
}

func (s *Store) Role() (auth.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authenticated {
		return "", false
	}
	return s.userRole, true
}
