package report

import (
	"context"
	"time"

	"github.com/hr-core/hr-core-go/internal/domain/report"
	"github.com/hr-core/hr-core-go/internal/store"
)

type ReportServiceImpl struct {
	store *store.Store
}

func NewReportService(st *store.Store) report.ReportService {
	return &ReportServiceImpl{store: st}
}

// Summary implements report.ReportService. Aggregates are recomputed from the
// collections on each call.
func (s *ReportServiceImpl) Summary(ctx context.Context) (report.SummaryResponse, error) {
	employees := s.store.Employees()
	active := s.store.ActiveEmployees()

	byDepartment := make(map[string]int)
	for _, e := range employees {
		byDepartment[e.Department]++
	}

	requests := s.store.LeaveRequests()
	byType := make(map[string]int)
	byStatus := make(map[string]int)
	for _, r := range requests {
		byType[string(r.Type)]++
		byStatus[string(r.Status)]++
	}

	today := time.Now().Format("2006-01-02")
	attendanceByStatus := make(map[string]int)
	for _, rec := range s.store.TimeRecordsForDate(today) {
		attendanceByStatus[string(rec.Status)]++
	}

	return report.SummaryResponse{
		Headcount: report.HeadcountSummary{
			Total:        len(employees),
			Active:       len(active),
			Inactive:     len(employees) - len(active),
			ByDepartment: byDepartment,
		},
		Leave: report.LeaveSummary{
			Total:    len(requests),
			ByType:   byType,
			ByStatus: byStatus,
		},
		Attendance: report.AttendanceSummary{
			Date:     today,
			ByStatus: attendanceByStatus,
		},
	}, nil
}
