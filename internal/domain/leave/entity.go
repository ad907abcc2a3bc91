package leave

type Type string

const (
	TypeVacation Type = "Vacation"
	TypeSick     Type = "Sick Leave"
	TypePersonal Type = "Personal"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest references its employee by identifier and additionally carries
// the denormalized employee name for display. New requests always enter as
// Pending; only Status is ever mutated afterwards, and requests are never
// deleted.
type LeaveRequest struct {
	ID           string `json:"id" yaml:"id"`
	EmployeeID   string `json:"employeeId" yaml:"employeeId"`
	EmployeeName string `json:"employeeName" yaml:"employeeName"`
	Type         Type   `json:"type" yaml:"type"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	Status       Status `json:"status" yaml:"status"`
}
