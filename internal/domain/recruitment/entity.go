package recruitment

type PostingStatus string

const (
	PostingOpen   PostingStatus = "Open"
	PostingClosed PostingStatus = "Closed"
)

type JobPosting struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title" yaml:"title"`
	Department string        `json:"department" yaml:"department"`
	Status     PostingStatus `json:"status" yaml:"status"`
	Candidates int           `json:"candidates" yaml:"candidates"`
}

// OnboardingPlan tracks a new hire's ramp-up. Progress is a percentage.
type OnboardingPlan struct {
	ID           string `json:"id" yaml:"id"`
	EmployeeName string `json:"employeeName" yaml:"employeeName"`
	Role         string `json:"role" yaml:"role"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	Manager      string `json:"manager" yaml:"manager"`
	Progress     int    `json:"progress" yaml:"progress"`
}
