package employee

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type Gender string

const (
	Male           Gender = "Male"
	Female         Gender = "Female"
	Other          Gender = "Other"
	PreferNotToSay Gender = "Prefer not to say"
)

type ContractType string

const (
	ContractFullTime ContractType = "Full-Time"
	ContractPartTime ContractType = "Part-Time"
	ContractContract ContractType = "Contract"
)

type Address struct {
	Street string `json:"street" yaml:"street"`
	City   string `json:"city" yaml:"city"`
	State  string `json:"state" yaml:"state"`
	Zip    string `json:"zip" yaml:"zip"`
}

type EmploymentHistory struct {
	Company   string `json:"company" yaml:"company"`
	Position  string `json:"position" yaml:"position"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
}

type Contract struct {
	Type      ContractType `json:"type" yaml:"type"`
	StartDate string       `json:"startDate" yaml:"startDate"`
	EndDate   string       `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type PerformanceSummary struct {
	LastReview          string   `json:"lastReview" yaml:"lastReview"`
	Achievements        []string `json:"achievements" yaml:"achievements"`
	AreasForImprovement []string `json:"areasForImprovement" yaml:"areasForImprovement"`
}

type LeaveCredits struct {
	Vacation int `json:"vacation" yaml:"vacation"`
	Sick     int `json:"sick" yaml:"sick"`
	Personal int `json:"personal" yaml:"personal"`
}

// Employee is the directory record. Records are never hard-deleted; leaving
// the company only flips Status to Inactive. A nil SupervisorID marks the
// record as an administrator.
//
// The JSON tags are the persisted document format and must stay stable.
type Employee struct {
	ID                string              `json:"id" yaml:"id"`
	Name              string              `json:"name" yaml:"name"`
	Position          string              `json:"position" yaml:"position"`
	Department        string              `json:"department" yaml:"department"`
	Email             string              `json:"email" yaml:"email"`
	Avatar            string              `json:"avatar" yaml:"avatar"`
	Status            Status              `json:"status" yaml:"status"`
	Gender            Gender              `json:"gender" yaml:"gender"`
	SupervisorID      *string             `json:"supervisorId" yaml:"supervisorId"`
	Address           Address             `json:"address" yaml:"address"`
	EmploymentHistory []EmploymentHistory `json:"employmentHistory" yaml:"employmentHistory"`
	Contracts         []Contract          `json:"contracts" yaml:"contracts"`
	Performance       PerformanceSummary  `json:"performance" yaml:"performance"`
	LeaveCredits      LeaveCredits        `json:"leaveCredits" yaml:"leaveCredits"`
	AccessibleModules []string            `json:"accessibleModules" yaml:"accessibleModules"`
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
