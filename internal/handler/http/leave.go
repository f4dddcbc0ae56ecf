package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListRecentByEmployee(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)

	GetBalance(w http.ResponseWriter, r *http.Request)
	GetRemaining(w http.ResponseWriter, r *http.Request)
	InitializeBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService   leave.LeaveService
	balanceService leave.BalanceService
	authorizer     middleware.Authorizer
}

func NewLeaveHandler(leaveService leave.LeaveService, balanceService leave.BalanceService, authorizer middleware.Authorizer) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:   leaveService,
		balanceService: balanceService,
		authorizer:     authorizer,
	}
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.GetAllLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewLeaveResponses(leaves))
}

// Create implements LeaveHandler. The employee defaults to the caller; only
// balance managers may file on behalf of someone else.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, "CreateLeave", &req) {
		return
	}

	if req.EmployeeID == "" {
		employeeID, ok := callerEmployeeID(w, r)
		if !ok {
			return
		}
		req.EmployeeID = employeeID
	}
	if !middleware.CanActFor(r, l.authorizer, req.EmployeeID, user.PermissionLeaveManageBalance) {
		response.Forbidden(w, "You may only apply for your own leave")
		return
	}

	created, err := l.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", leave.NewLeaveResponse(created))
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	lv, err := l.leaveService.GetLeave(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !middleware.CanActFor(r, l.authorizer, lv.EmployeeID, user.PermissionLeaveViewAll) {
		// Hide existence from callers who may not see it.
		response.HandleError(w, leave.ErrLeaveNotFound)
		return
	}
	response.Success(w, leave.NewLeaveResponse(lv))
}

// Approve implements LeaveHandler. The approver is the calling user.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	approved, err := l.leaveService.ApproveLeave(r.Context(), chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved successfully", leave.NewLeaveResponse(approved))
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var req leave.RejectLeaveRequest
	if !decodeJSON(w, r, "RejectLeave", &req) {
		return
	}

	rejected, err := l.leaveService.RejectLeave(r.Context(), chi.URLParam(r, "id"), claims.UserID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected successfully", leave.NewLeaveResponse(rejected))
}

// ListByEmployee implements LeaveHandler.
func (l *LeaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.GetLeavesByEmployeeID(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewLeaveResponses(leaves))
}

// ListRecentByEmployee implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRecentByEmployee(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	leaves, err := l.leaveService.GetRecentLeavesByEmployeeID(r.Context(), chi.URLParam(r, "employeeID"), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewLeaveResponses(leaves))
}

// ListTeam implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.GetTeamLeavesByManagerID(r.Context(), chi.URLParam(r, "managerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewLeaveResponses(leaves))
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := l.balanceService.GetLeaveBalance(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewBalanceResponse(balance))
}

// GetRemaining implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRemaining(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	remaining, err := l.balanceService.GetRemainingLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]any{
		"employee_id":      employeeID,
		"remaining_leaves": remaining,
	})
}

// InitializeBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) InitializeBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := l.balanceService.InitializeLeaveBalance(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave balance initialized successfully", leave.NewBalanceResponse(balance))
}
