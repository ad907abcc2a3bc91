package recruitment

import (
	"context"

	"github.com/hr-core/hr-core-go/internal/domain/recruitment"
	"github.com/hr-core/hr-core-go/internal/store"
)

type RecruitmentServiceImpl struct {
	store *store.Store
}

func NewRecruitmentService(st *store.Store) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{store: st}
}

// ListJobPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListJobPostings(ctx context.Context) ([]recruitment.JobPosting, error) {
	return s.store.JobPostings(), nil
}

// ListOnboardingPlans implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListOnboardingPlans(ctx context.Context) ([]recruitment.OnboardingPlan, error) {
	return s.store.OnboardingPlans(), nil
}
