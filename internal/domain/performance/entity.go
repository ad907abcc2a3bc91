package performance

type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "Pending"
	ReviewCompleted ReviewStatus = "Completed"
)

type PerformanceReview struct {
	ID           string       `json:"id" yaml:"id"`
	EmployeeID   string       `json:"employeeId" yaml:"employeeId"`
	EmployeeName string       `json:"employeeName" yaml:"employeeName"`
	Date         string       `json:"date" yaml:"date"`
	Status       ReviewStatus `json:"status" yaml:"status"`
}
