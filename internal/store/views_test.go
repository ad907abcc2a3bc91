package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-core/hr-core-go/internal/domain/employee"
)

func TestActiveAndInactiveEmployeesPartition(t *testing.T) {
	s, _ := newTestStore(t)

	active := s.ActiveEmployees()
	inactive := s.InactiveEmployees()

	assert.Len(t, active, 4)
	assert.Len(t, inactive, 1)
	assert.Equal(t, seedInactiveID, inactive[0].ID)
	assert.Len(t, s.Employees(), len(active)+len(inactive))
}

func TestLeaveRequestScopingFollowsActiveSet(t *testing.T) {
	s, _ := newTestStore(t)

	// Charlie Davis is inactive; his seeded request lands in the complement.
	active := s.ActiveLeaveRequests()
	inactive := s.InactiveLeaveRequests()

	assert.Len(t, active, 3)
	require.Len(t, inactive, 1)
	assert.Equal(t, seedInactiveID, inactive[0].EmployeeID)
}

func TestViewsRecomputeAfterDeactivation(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.EmployeeByID(seedEmployeeID)
	require.NoError(t, err)
	e.Status = employee.StatusInactive
	require.NoError(t, s.UpdateEmployee(e))

	assert.Len(t, s.ActiveEmployees(), 3)
	for _, r := range s.ActiveLeaveRequests() {
		assert.NotEqual(t, seedEmployeeID, r.EmployeeID)
	}
	found := false
	for _, r := range s.InactiveLeaveRequests() {
		if r.EmployeeID == seedEmployeeID {
			found = true
		}
	}
	assert.True(t, found, "requests of a deactivated employee move to the inactive view")
}

func TestLeaveRequestsForScopesToOneEmployee(t *testing.T) {
	s, _ := newTestStore(t)

	mine := s.LeaveRequestsFor(seedEmployeeID)
	require.Len(t, mine, 1)
	assert.Equal(t, seedEmployeeID, mine[0].EmployeeID)

	assert.Empty(t, s.LeaveRequestsFor("nobody"))
}

func TestScheduleViews(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Len(t, s.ActiveSchedules(), 4)
	assert.Empty(t, s.InactiveSchedules())

	sch, err := s.ScheduleFor(seedEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "9-5", sch.Monday)

	_, err = s.ScheduleFor(seedInactiveID)
	assert.Error(t, err)
}

func TestTimeRecordsForDate(t *testing.T) {
	s, _ := newTestStore(t)
	today := time.Now().Format("2006-01-02")

	assert.Len(t, s.TimeRecordsForDate(today), 4)
	assert.Empty(t, s.TimeRecordsForDate("1999-01-01"))

	rec, ok := s.TimeRecordFor(seedEmployeeID, today)
	require.True(t, ok)
	assert.Equal(t, "09:05", rec.TimeIn)
}
