package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TimesheetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	SaveWeekly(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
	authorizer       middleware.Authorizer
}

func NewTimesheetHandler(timesheetService timesheet.Service, authorizer middleware.Authorizer) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
		authorizer:       authorizer,
	}
}

// filterFromQuery reads employee_id, from, to and status. Callers who may not
// view all timesheets are pinned to their own entries.
func (h *timesheetHandlerImpl) filterFromQuery(w http.ResponseWriter, r *http.Request) (timesheet.Filter, bool) {
	var (
		filter timesheet.Filter
		errs   validator.ValidationErrors
	)
	q := r.URL.Query()

	if id := q.Get("employee_id"); id != "" {
		filter.EmployeeID = &id
	}
	if from := q.Get("from"); from != "" {
		if d, ok := validator.IsValidDate(from); ok {
			filter.From = &d
		} else {
			errs.Add("from", "from must be in YYYY-MM-DD format")
		}
	}
	if to := q.Get("to"); to != "" {
		if d, ok := validator.IsValidDate(to); ok {
			filter.To = &d
		} else {
			errs.Add("to", "to must be in YYYY-MM-DD format")
		}
	}
	if status := q.Get("status"); status != "" {
		if st, ok := timesheet.ParseStatus(status); ok {
			filter.Status = &st
		} else {
			errs.Add("status", "status must be one of PENDING, APPROVED, REJECTED")
		}
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return filter, false
	}

	claims, ok := callerClaims(w, r)
	if !ok {
		return filter, false
	}
	viewAll, err := h.authorizer.AllowedAny(claims.Role, user.PermissionTimesheetViewAll)
	if err != nil || !viewAll {
		employeeID, ok := callerEmployeeID(w, r)
		if !ok {
			return filter, false
		}
		filter.EmployeeID = &employeeID
	}
	return filter, true
}

// List implements TimesheetHandler.
func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.filterFromQuery(w, r)
	if !ok {
		return
	}
	entries, err := h.timesheetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, timesheet.NewTimesheetResponses(entries))
}

// Create implements TimesheetHandler.
func (h *timesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateTimesheetRequest
	if !decodeJSON(w, r, "CreateTimesheet", &req) {
		return
	}
	if req.EmployeeID == "" {
		employeeID, ok := callerEmployeeID(w, r)
		if !ok {
			return
		}
		req.EmployeeID = employeeID
	}
	if !middleware.CanActFor(r, h.authorizer, req.EmployeeID, user.PermissionTimesheetApprove) {
		response.Forbidden(w, "You may only log your own time")
		return
	}

	created, err := h.timesheetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Timesheet entry created successfully", timesheet.NewTimesheetResponse(created))
}

// Export implements TimesheetHandler.
func (h *timesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.filterFromQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.timesheetService.ExportXLSX(r.Context(), filter, &buf); err != nil {
		response.HandleError(w, err)
		return
	}
	filename := fmt.Sprintf("timesheets_%s.xlsx", time.Now().Format("20060102"))
	response.Attachment(w, xlsxContentType, filename, buf.Bytes())
}

// SaveWeekly implements TimesheetHandler.
func (h *timesheetHandlerImpl) SaveWeekly(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveWeeklyRequest
	if !decodeJSON(w, r, "SaveWeeklyTimesheet", &req) {
		return
	}
	if req.EmployeeID == "" {
		employeeID, ok := callerEmployeeID(w, r)
		if !ok {
			return
		}
		req.EmployeeID = employeeID
	}
	if !middleware.CanActFor(r, h.authorizer, req.EmployeeID, user.PermissionTimesheetApprove) {
		response.Forbidden(w, "You may only log your own time")
		return
	}

	saved, err := h.timesheetService.SaveWeekly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Weekly timesheet saved successfully", timesheet.NewTimesheetResponses(saved))
}

// Get implements TimesheetHandler.
func (h *timesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timesheetService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !middleware.CanActFor(r, h.authorizer, entry.EmployeeID, user.PermissionTimesheetViewAll) {
		response.HandleError(w, timesheet.ErrTimesheetNotFound)
		return
	}
	response.Success(w, timesheet.NewTimesheetResponse(entry))
}

// Update implements TimesheetHandler.
func (h *timesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req timesheet.UpdateTimesheetRequest
	if !decodeJSON(w, r, "UpdateTimesheet", &req) {
		return
	}

	entry, err := h.timesheetService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !middleware.CanActFor(r, h.authorizer, entry.EmployeeID, user.PermissionTimesheetApprove) {
		response.HandleError(w, timesheet.ErrTimesheetNotFound)
		return
	}

	updated, err := h.timesheetService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet entry updated successfully", timesheet.NewTimesheetResponse(updated))
}

// Approve implements TimesheetHandler.
func (h *timesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var req timesheet.ReviewRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, "ApproveTimesheet", &req) {
		return
	}

	approved, err := h.timesheetService.Approve(r.Context(), chi.URLParam(r, "id"), claims.UserID, req.Comments)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet approved successfully", timesheet.NewTimesheetResponse(approved))
}

// Reject implements TimesheetHandler.
func (h *timesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var req timesheet.ReviewRequest
	if !decodeJSON(w, r, "RejectTimesheet", &req) {
		return
	}

	rejected, err := h.timesheetService.Reject(r.Context(), chi.URLParam(r, "id"), claims.UserID, req.Comments)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet rejected successfully", timesheet.NewTimesheetResponse(rejected))
}

// ListTeam implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timesheetService.TeamTimesheets(r.Context(), chi.URLParam(r, "managerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, timesheet.NewTimesheetResponses(entries))
}
