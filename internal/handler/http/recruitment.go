package http

import (
	"net/http"

	"github.com/hr-core/hr-core-go/internal/domain/recruitment"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	JobPostings(w http.ResponseWriter, r *http.Request)
	OnboardingPlans(w http.ResponseWriter, r *http.Request)
}

type RecruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

// JobPostings implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) JobPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := h.recruitmentService.ListJobPostings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, postings)
}

// OnboardingPlans implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) OnboardingPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.recruitmentService.ListOnboardingPlans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plans)
}
