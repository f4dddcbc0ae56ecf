package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

type ReportingHandler interface {
	ListManagers(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	ListAvailableEmployees(w http.ResponseWriter, r *http.Request)
	GetManager(w http.ResponseWriter, r *http.Request)
	RemoveManager(w http.ResponseWriter, r *http.Request)
	PromoteToManager(w http.ResponseWriter, r *http.Request)
	PromoteToHR(w http.ResponseWriter, r *http.Request)
	RemoveTeamMember(w http.ResponseWriter, r *http.Request)
}

type reportingHandlerImpl struct {
	reportingService reporting.Service
}

func NewReportingHandler(reportingService reporting.Service) ReportingHandler {
	return &reportingHandlerImpl{reportingService: reportingService}
}

// ListManagers implements ReportingHandler.
func (h *reportingHandlerImpl) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.reportingService.ListManagers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, managers)
}

// Assign implements ReportingHandler.
func (h *reportingHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req reporting.AssignRequest
	if !decodeJSON(w, r, "AssignReporting", &req) {
		return
	}

	assignment, err := h.reportingService.CreateOrUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reporting assignment saved successfully", reporting.NewAssignmentResponse(assignment))
}

// ListAssignments implements ReportingHandler.
func (h *reportingHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.reportingService.ListAllAssignments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}

// ListAvailableEmployees implements ReportingHandler.
func (h *reportingHandlerImpl) ListAvailableEmployees(w http.ResponseWriter, r *http.Request) {
	members, err := h.reportingService.GetAvailableEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// GetManager implements ReportingHandler.
func (h *reportingHandlerImpl) GetManager(w http.ResponseWriter, r *http.Request) {
	details, err := h.reportingService.GetManagerDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, details)
}

// RemoveManager implements ReportingHandler.
func (h *reportingHandlerImpl) RemoveManager(w http.ResponseWriter, r *http.Request) {
	if err := h.reportingService.RemoveManager(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reporting manager removed successfully", nil)
}

// PromoteToManager implements ReportingHandler.
func (h *reportingHandlerImpl) PromoteToManager(w http.ResponseWriter, r *http.Request) {
	emp, err := h.reportingService.PromoteToManager(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee promoted to reporting manager", employee.NewEmployeeResponse(emp))
}

// PromoteToHR implements ReportingHandler.
func (h *reportingHandlerImpl) PromoteToHR(w http.ResponseWriter, r *http.Request) {
	emp, err := h.reportingService.PromoteToHR(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee promoted to HR", employee.NewEmployeeResponse(emp))
}

// RemoveTeamMember implements ReportingHandler.
func (h *reportingHandlerImpl) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.reportingService.RemoveTeamMember(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Team member removed successfully", nil)
}
