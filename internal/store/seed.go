package store

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/domain/performance"
	"github.com/hr-core/hr-core-go/internal/domain/recruitment"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Employees          []employee.Employee             `yaml:"employees"`
	JobPostings        []recruitment.JobPosting        `yaml:"jobPostings"`
	OnboardingPlans    []recruitment.OnboardingPlan    `yaml:"onboardingPlans"`
	PerformanceReviews []performance.PerformanceReview `yaml:"performanceReviews"`
	LeaveRequests      []leave.LeaveRequest            `yaml:"leaveRequests"`
	TimeRecords        []attendance.TimeRecord         `yaml:"timeRecords"`
	Schedules          []attendance.EmployeeSchedule   `yaml:"schedules"`
}

// loadSeed decodes the embedded dataset. The seed ships without time record
// dates; those are stamped with the current day so the daily attendance view
// has rows on a fresh install.
func loadSeed() seedData {
	var s seedData
	if err := yaml.Unmarshal(seedYAML, &s); err != nil {
		panic("store: malformed embedded seed dataset: " + err.Error())
	}

	today := time.Now().Format("2006-01-02")
	for i := range s.TimeRecords {
		s.TimeRecords[i].Date = today
	}
	return s
}
