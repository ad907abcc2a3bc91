package dashboard

import (
	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
)

// AdminDashboardResponse aggregates the organisation-wide counters shown on
// the admin landing page.
type AdminDashboardResponse struct {
	TotalEmployees       int `json:"totalEmployees"`
	ActiveEmployees      int `json:"activeEmployees"`
	InactiveEmployees    int `json:"inactiveEmployees"`
	OpenJobPostings      int `json:"openJobPostings"`
	OnboardingPlans      int `json:"onboardingPlans"`
	PendingReviews       int `json:"pendingReviews"`
	PendingLeaveRequests int `json:"pendingLeaveRequests"`
}

// EmployeeDashboardResponse is the personal landing page: remaining credits,
// own requests and today's attendance.
type EmployeeDashboardResponse struct {
	Employee      employee.Employee            `json:"employee"`
	LeaveCredits  employee.LeaveCredits        `json:"leaveCredits"`
	LeaveRequests []leave.LeaveRequest         `json:"leaveRequests"`
	Schedule      *attendance.EmployeeSchedule `json:"schedule"`
	TodayRecord   *attendance.TimeRecord       `json:"todayRecord"`
}
