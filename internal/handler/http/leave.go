package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hr-core/hr-core-go/internal/domain/leave"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Advice(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// List implements LeaveHandler. The scope query parameter selects requests by
// the owning employee's status: active (default), inactive or all.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		requests []leave.LeaveRequest
		err      error
	)

	switch r.URL.Query().Get("scope") {
	case "", "active":
		requests, err = h.leaveService.ListActive(r.Context())
	case "inactive":
		requests, err = h.leaveService.ListInactive(r.Context())
	case "all":
		requests, err = h.leaveService.List(r.Context())
	default:
		response.BadRequest(w, "scope must be active, inactive or all", nil)
		return
	}

	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	request, err := h.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", request)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var statusReq leave.UpdateLeaveStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	request, err := h.leaveService.UpdateStatus(r.Context(), id, statusReq)
	if err != nil {
		slog.Error("Update leave status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request status updated", request)
}

// Advice implements LeaveHandler. The advisory result is never authoritative;
// a degraded response still lets the form submit.
func (h *LeaveHandlerImpl) Advice(w http.ResponseWriter, r *http.Request) {
	var adviceReq leave.AdviceRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&adviceReq); err != nil {
		slog.Error("Leave advice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	advice, err := h.leaveService.Advice(r.Context(), adviceReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advice)
}
