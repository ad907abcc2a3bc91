package performance

import (
	"context"
)

type PerformanceService interface {
	ListReviews(ctx context.Context) ([]PerformanceReview, error)
}
