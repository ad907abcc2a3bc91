package leave

import (
	"context"
)

type LeaveService interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	ListActive(ctx context.Context) ([]LeaveRequest, error)
	ListInactive(ctx context.Context) ([]LeaveRequest, error)
	ListMine(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveRequest, error)
	Advice(ctx context.Context, req AdviceRequest) (AdviceResponse, error)
}
