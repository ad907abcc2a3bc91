package http

import (
	"net/http"

	"github.com/hr-core/hr-core-go/internal/domain/report"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
