package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/pkg/kvstore"
)

const (
	seedAdminID    = "6512bd43-d9ca-4e9c-b67a-2d97bd1c7a44" // Alice Johnson, no supervisor
	seedEmployeeID = "8f14e45f-ceea-467f-9f4d-0c1a51a1b6e2" // John Doe
	seedInactiveID = "5e9f8a31-4c6d-45b2-9d7e-3a1b2c4d5e66" // Charlie Davis
)

func newTestStore(t *testing.T) (*Store, *kvstore.Store) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)
	return New(kv), kv
}

func testEmployee(name string) employee.Employee {
	supervisor := seedAdminID
	return employee.Employee{
		Name:         name,
		Position:     "QA Engineer",
		Department:   "Technology",
		Email:        "new.hire@example.com",
		Status:       employee.StatusActive,
		Gender:       employee.Female,
		SupervisorID: &supervisor,
		LeaveCredits: employee.LeaveCredits{Vacation: 10, Sick: 5, Personal: 2},
	}
}

func TestNewSeedsCollectionsAndPersistsThem(t *testing.T) {
	s, kv := newTestStore(t)

	assert.Len(t, s.Employees(), 5)
	assert.Len(t, s.LeaveRequests(), 4)
	assert.Len(t, s.Schedules(), 4)
	assert.Len(t, s.JobPostings(), 3)
	assert.Len(t, s.OnboardingPlans(), 2)
	assert.Len(t, s.PerformanceReviews(), 3)

	// First run materializes the seed on disk.
	persisted, err := kvstore.Read[[]employee.Employee](kv, keyEmployees)
	require.NoError(t, err)
	assert.Equal(t, s.Employees(), persisted)
}

func TestNewReadsBackPersistedState(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	first := New(kv)
	created, err := first.AddEmployee(testEmployee("Dana Hill"))
	require.NoError(t, err)

	second := New(kv)
	got, err := second.EmployeeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Len(t, second.Employees(), 6)
}

func TestAddEmployeeAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Employees())

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := s.AddEmployee(testEmployee("Clone"))
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "identifier %q assigned twice", created.ID)
		seen[created.ID] = true
	}
	assert.Len(t, s.Employees(), before+20)
}

func TestAddEmployeeAppendsToEnd(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddEmployee(testEmployee("Dana Hill"))
	require.NoError(t, err)

	all := s.Employees()
	assert.Equal(t, created.ID, all[len(all)-1].ID)
}

func TestUpdateEmployeeReplacesMatchingRecord(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.EmployeeByID(seedEmployeeID)
	require.NoError(t, err)
	e.Position = "Staff Engineer"
	e.LeaveCredits.Vacation = 99

	require.NoError(t, s.UpdateEmployee(e))

	got, err := s.EmployeeByID(seedEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUpdateEmployeeMissingIDLeavesCollectionUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Employees()

	ghost := testEmployee("Ghost")
	ghost.ID = "00000000-0000-0000-0000-000000000000"
	err := s.UpdateEmployee(ghost)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, before, s.Employees())
}

func TestAddLeaveRequestForcesPendingAtHead(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddLeaveRequest(leave.LeaveRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypeVacation,
		StartDate:  "2024-08-01",
		EndDate:    "2024-08-03",
		Status:     leave.StatusApproved, // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "John Doe", created.EmployeeName)
	assert.NotEmpty(t, created.ID)

	all := s.LeaveRequests()
	assert.Equal(t, created, all[0], "new request must be first in read order")
}

func TestAddLeaveRequestUnknownEmployee(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.LeaveRequests()

	_, err := s.AddLeaveRequest(leave.LeaveRequest{EmployeeID: "nope"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, before, s.LeaveRequests())
}

func TestUpdateLeaveRequestStatusTouchesOnlyStatus(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddLeaveRequest(leave.LeaveRequest{
		EmployeeID: seedEmployeeID,
		Type:       leave.TypeVacation,
		StartDate:  "2024-08-01",
		EndDate:    "2024-08-03",
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateLeaveRequestStatus(created.ID, leave.StatusApproved))

	got, err := s.LeaveRequestByID(created.ID)
	require.NoError(t, err)

	want := created
	want.Status = leave.StatusApproved
	assert.Equal(t, want, got, "only the status field may change")
}

func TestUpdateLeaveRequestStatusMissingIDIsRejected(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.LeaveRequests()

	err := s.UpdateLeaveRequestStatus("missing", leave.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	assert.Equal(t, before, s.LeaveRequests())
}

func TestLoginDerivesRoleFromSupervisorLink(t *testing.T) {
	s, _ := newTestStore(t)

	_, role, err := s.Login(seedAdminID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)

	_, role, err = s.Login(seedEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleEmployee, role)
}

func TestLoginUnknownEmployeeChangesNothing(t *testing.T) {
	s, _ := newTestStore(t)

	_, _, err := s.Login("missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	_, ok = s.Role()
	assert.False(t, ok)
}

func TestSessionPersistsAcrossConstruction(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	first := New(kv)
	_, _, err = first.Login(seedEmployeeID)
	require.NoError(t, err)

	second := New(kv)
	user, ok := second.CurrentUser()
	require.True(t, ok, "session must be restored from the persisted pointer")
	assert.Equal(t, seedEmployeeID, user.ID)

	role, ok := second.Role()
	require.True(t, ok)
	assert.Equal(t, auth.RoleEmployee, role)
}

func TestLogoutClearsSession(t *testing.T) {
	s, kv := newTestStore(t)

	_, _, err := s.Login(seedAdminID)
	require.NoError(t, err)

	s.Logout()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	_, err = kvstore.Read[auth.Session](kv, keySession)
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestLeaveRequestLifecycleScenario(t *testing.T) {
	s, _ := newTestStore(t)

	_, role, err := s.Login(seedAdminID)
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, role)

	created, err := s.AddLeaveRequest(leave.LeaveRequest{
		EmployeeID: seedAdminID,
		Type:       leave.TypeVacation,
		StartDate:  "2024-08-01",
		EndDate:    "2024-08-03",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, created, s.LeaveRequests()[0])

	require.NoError(t, s.UpdateLeaveRequestStatus(created.ID, leave.StatusApproved))

	got, err := s.LeaveRequestByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, created.Type, got.Type)
	assert.Equal(t, created.StartDate, got.StartDate)
	assert.Equal(t, created.EndDate, got.EndDate)
}
