package leave

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/pkg/advisory"
	"github.com/hr-core/hr-core-go/internal/store"
)

type LeaveServiceImpl struct {
	store     *store.Store
	debouncer *advisory.Debouncer
}

func NewLeaveService(st *store.Store, debouncer *advisory.Debouncer) leave.LeaveService {
	return &LeaveServiceImpl{
		store:     st,
		debouncer: debouncer,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.store.LeaveRequests(), nil
}

// ListActive implements leave.LeaveService.
func (s *LeaveServiceImpl) ListActive(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.store.ActiveLeaveRequests(), nil
}

// ListInactive implements leave.LeaveService.
func (s *LeaveServiceImpl) ListInactive(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.store.InactiveLeaveRequests(), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveRequest, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.LeaveRequestsFor(employeeID), nil
}

// Create implements leave.LeaveService. New requests always start Pending;
// the store enforces that regardless of what the request carries.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.store.AddLeaveRequest(leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := s.store.UpdateLeaveRequestStatus(id, req.Status); err != nil {
		return leave.LeaveRequest{}, err
	}
	return s.store.LeaveRequestByID(id)
}

// Advice implements leave.LeaveService. Calls are coalesced per employee so
// that rapid form edits produce at most one upstream request; a superseded or
// failed check degrades to a response without a verdict instead of failing
// the caller.
func (s *LeaveServiceImpl) Advice(ctx context.Context, req leave.AdviceRequest) (leave.AdviceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.AdviceResponse{}, err
	}

	emp, err := s.store.EmployeeByID(req.EmployeeID)
	if err != nil {
		return leave.AdviceResponse{}, err
	}

	result, err := s.debouncer.CheckLeaveAvailability(ctx, emp.ID, advisory.LeaveQuery{
		EmployeeName: emp.Name,
		Vacation:     emp.LeaveCredits.Vacation,
		Sick:         emp.LeaveCredits.Sick,
		Personal:     emp.LeaveCredits.Personal,
		LeaveType:    string(req.Type),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return leave.AdviceResponse{}, err
		}
		return leave.AdviceResponse{Degraded: true}, nil
	}

	return leave.AdviceResponse{
		Verdict: string(result.Verdict),
		Message: result.Message,
	}, nil
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
