package recruitment

import (
	"context"
)

type RecruitmentService interface {
	ListJobPostings(ctx context.Context) ([]JobPosting, error)
	ListOnboardingPlans(ctx context.Context) ([]OnboardingPlan, error)
}
