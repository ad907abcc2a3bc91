package http

import (
	"net/http"

	"github.com/hr-core/hr-core-go/internal/domain/performance"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Reviews(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// Reviews implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.ListReviews(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reviews)
}
