package performance

import (
	"context"

	"github.com/hr-core/hr-core-go/internal/domain/performance"
	"github.com/hr-core/hr-core-go/internal/store"
)

type PerformanceServiceImpl struct {
	store *store.Store
}

func NewPerformanceService(st *store.Store) performance.PerformanceService {
	return &PerformanceServiceImpl{store: st}
}

// ListReviews implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListReviews(ctx context.Context) ([]performance.PerformanceReview, error) {
	return s.store.PerformanceReviews(), nil
}
