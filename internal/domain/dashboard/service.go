package dashboard

import (
	"context"
)

type DashboardService interface {
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
	EmployeeDashboard(ctx context.Context) (EmployeeDashboardResponse, error)
}
