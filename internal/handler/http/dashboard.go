package http

import (
	"net/http"

	"github.com/oryfolks/hrms-backend-go/internal/domain/dashboard"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	authorizer       middleware.Authorizer
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, authorizer middleware.Authorizer) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		authorizer:       authorizer,
	}
}

// Admin implements DashboardHandler.
func (h *dashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.AdminSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Team implements DashboardHandler. Managers see their own team; holders of
// the admin dashboard may pass manager_id to look at another.
func (h *dashboardHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	managerID := r.URL.Query().Get("manager_id")
	if managerID == "" {
		id, ok := callerEmployeeID(w, r)
		if !ok {
			return
		}
		managerID = id
	}
	if !middleware.CanActFor(r, h.authorizer, managerID, user.PermissionDashboardAdmin) {
		response.Forbidden(w, "You may only view your own team")
		return
	}

	summary, err := h.dashboardService.TeamSummary(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
