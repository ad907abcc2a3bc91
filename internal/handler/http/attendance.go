package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hr-core/hr-core-go/internal/domain/attendance"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	TimeRecords(w http.ResponseWriter, r *http.Request)
	Schedules(w http.ResponseWriter, r *http.Request)
	InactiveSchedules(w http.ResponseWriter, r *http.Request)
	ScheduleByEmployee(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// TimeRecords implements AttendanceHandler. Date defaults to today.
func (h *AttendanceHandlerImpl) TimeRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.TimeRecordsForDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Schedules implements AttendanceHandler. Only schedules of active employees
// are listed here.
func (h *AttendanceHandlerImpl) Schedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.attendanceService.ListActiveSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// InactiveSchedules implements AttendanceHandler.
func (h *AttendanceHandlerImpl) InactiveSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.attendanceService.ListInactiveSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// ScheduleByEmployee implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ScheduleByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	schedule, err := h.attendanceService.ScheduleFor(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}

// MyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	myAttendance, err := h.attendanceService.MyAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, myAttendance)
}
