package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/pkg/advisory"
	"github.com/hr-core/hr-core-go/internal/pkg/jwt"
	"github.com/hr-core/hr-core-go/internal/pkg/kvstore"
	"github.com/hr-core/hr-core-go/internal/store"
)

const (
	seedEmployeeID = "8f14e45f-ceea-467f-9f4d-0c1a51a1b6e2"
)

type stubAdvisoryClient struct {
	result advisory.Advisory
	err    error
	lastQ  advisory.LeaveQuery
}

func (c *stubAdvisoryClient) CheckLeaveAvailability(ctx context.Context, q advisory.LeaveQuery) (advisory.Advisory, error) {
	c.lastQ = q
	return c.result, c.err
}

func (c *stubAdvisoryClient) Generate(ctx context.Context, prompt string) (string, error) {
	return "", advisory.ErrDisabled
}

func newTestService(t *testing.T, client advisory.Client) (leave.LeaveService, *store.Store) {
	t.Helper()

	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	st := store.New(kv)
	return NewLeaveService(st, advisory.NewDebouncer(client, time.Millisecond)), st
}

func TestCreateForcesPending(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	created, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypeVacation,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "John Doe", created.EmployeeName)
	assert.NotEmpty(t, created.ID)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	tests := []struct {
		name string
		req  leave.CreateLeaveRequestRequest
	}{
		{
			name: "missing employee",
			req: leave.CreateLeaveRequestRequest{
				Type:      leave.TypeVacation,
				StartDate: "2026-09-01",
				EndDate:   "2026-09-05",
			},
		},
		{
			name: "bad leave type",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: seedEmployeeID,
				Type:       "Sabbatical",
				StartDate:  "2026-09-01",
				EndDate:    "2026-09-05",
			},
		},
		{
			name: "end before start",
			req: leave.CreateLeaveRequestRequest{
				EmployeeID: seedEmployeeID,
				Type:       leave.TypeVacation,
				StartDate:  "2026-09-05",
				EndDate:    "2026-09-01",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, st := newTestService(t, &stubAdvisoryClient{})

	created, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypePersonal,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-02",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)

	stored, err := st.LeaveRequestByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	_, err := svc.UpdateStatus(context.Background(), "missing", leave.UpdateLeaveStatusRequest{Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestUpdateStatusRejectsPending(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	_, err := svc.UpdateStatus(context.Background(), "whatever", leave.UpdateLeaveStatusRequest{Status: leave.StatusPending})
	assert.Error(t, err)
}

func TestAdviceCarriesLeaveCredits(t *testing.T) {
	client := &stubAdvisoryClient{
		result: advisory.Advisory{Verdict: advisory.VerdictConfirmed, Message: "CONFIRMED: enough vacation days remain."},
	}
	svc, _ := newTestService(t, client)

	resp, err := svc.Advice(context.Background(), leave.AdviceRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypeVacation,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	})
	require.NoError(t, err)

	assert.Equal(t, string(advisory.VerdictConfirmed), resp.Verdict)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "John Doe", client.lastQ.EmployeeName)
	assert.Equal(t, "Vacation", client.lastQ.LeaveType)
}

func TestAdviceDegradesOnFailure(t *testing.T) {
	client := &stubAdvisoryClient{err: advisory.ErrUnavailable}
	svc, _ := newTestService(t, client)

	resp, err := svc.Advice(context.Background(), leave.AdviceRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypeVacation,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	})
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Verdict)
}

func TestAdviceUnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	_, err := svc.Advice(context.Background(), leave.AdviceRequest{
		EmployeeID: "no-such-id",
		Type:       leave.TypeVacation,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListMine(t *testing.T) {
	svc, _ := newTestService(t, &stubAdvisoryClient{})

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	tokenString, _, err := jwtService.GenerateSessionToken(seedEmployeeID, "Employee", nil)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	requests, err := svc.ListMine(ctx)
	require.NoError(t, err)
	for _, r := range requests {
		assert.Equal(t, seedEmployeeID, r.EmployeeID)
	}
	assert.NotEmpty(t, requests)
}
