package report

import (
	"context"
)

type ReportService interface {
	Summary(ctx context.Context) (SummaryResponse, error)
}
