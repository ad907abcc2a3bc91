package dashboard

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/dashboard"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/domain/performance"
	"github.com/hr-core/hr-core-go/internal/domain/recruitment"
	"github.com/hr-core/hr-core-go/internal/store"
)

type DashboardServiceImpl struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) dashboard.DashboardService {
	return &DashboardServiceImpl{store: st}
}

// AdminDashboard implements dashboard.DashboardService. Counters are derived
// from the collections on every call, never cached.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	employees := s.store.Employees()
	active := s.store.ActiveEmployees()

	openPostings := 0
	for _, p := range s.store.JobPostings() {
		if p.Status == recruitment.PostingOpen {
			openPostings++
		}
	}

	pendingReviews := 0
	for _, r := range s.store.PerformanceReviews() {
		if r.Status == performance.ReviewPending {
			pendingReviews++
		}
	}

	pendingLeave := 0
	for _, r := range s.store.ActiveLeaveRequests() {
		if r.Status == leave.StatusPending {
			pendingLeave++
		}
	}

	return dashboard.AdminDashboardResponse{
		TotalEmployees:       len(employees),
		ActiveEmployees:      len(active),
		InactiveEmployees:    len(employees) - len(active),
		OpenJobPostings:      openPostings,
		OnboardingPlans:      len(s.store.OnboardingPlans()),
		PendingReviews:       pendingReviews,
		PendingLeaveRequests: pendingLeave,
	}, nil
}

// EmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context) (dashboard.EmployeeDashboardResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	emp, err := s.store.EmployeeByID(employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	resp := dashboard.EmployeeDashboardResponse{
		Employee:      emp,
		LeaveCredits:  emp.LeaveCredits,
		LeaveRequests: s.store.LeaveRequestsFor(employeeID),
	}

	if schedule, err := s.store.ScheduleFor(employeeID); err == nil {
		resp.Schedule = &schedule
	}
	if record, ok := s.store.TimeRecordFor(employeeID, time.Now().Format("2006-01-02")); ok {
		resp.TodayRecord = &record
	}

	return resp, nil
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
