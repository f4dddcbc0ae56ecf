package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Reporting  ReportingHandler
	Timesheet  TimesheetHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, az middleware.Authorizer, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	perm := func(perms ...user.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(az, perms...)
	}
	selfOr := func(param string, perms ...user.Permission) func(http.Handler) http.Handler {
		return middleware.RequireSelfOr(az, param, perms...)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Route("/employees", func(r chi.Router) {
			r.With(perm(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
			r.With(perm(user.PermissionEmployeeManage)).Post("/", h.Employee.Create)
			r.Get("/me", h.Employee.GetMe)

			r.Route("/{id}", func(r chi.Router) {
				r.With(selfOr("id", user.PermissionEmployeeViewAll)).Get("/", h.Employee.Get)
				r.With(perm(user.PermissionEmployeeManage)).Put("/", h.Employee.Update)
				r.With(perm(user.PermissionEmployeeDelete)).Delete("/", h.Employee.Delete)
				r.With(perm(user.PermissionEmployeeManage)).Post("/deactivate", h.Employee.Deactivate)
				r.With(selfOr("id", user.PermissionEmployeeViewAll)).Get("/profile", h.Employee.GetProfile)
				r.With(selfOr("id", user.PermissionEmployeeViewAll)).Get("/documents", h.Employee.ListDocuments)
				r.With(selfOr("id", user.PermissionEmployeeManage)).Post("/documents", h.Employee.AddDocument)
				r.With(selfOr("id", user.PermissionEmployeeManage)).Post("/documents/upload", h.Employee.UploadDocument)
				r.With(selfOr("id", user.PermissionEmployeeViewAll)).Get("/documents/{docID}/file", h.Employee.DownloadDocument)
				r.With(perm(user.PermissionEmployeeManage)).Delete("/documents/{docID}", h.Employee.DeleteDocument)
			})
		})

		r.Route("/company-details", func(r chi.Router) {
			r.With(perm(user.PermissionEmployeeViewAll)).Get("/missing", h.Employee.ListMissingCompanyDetails)
			r.With(selfOr("employeeID", user.PermissionEmployeeViewAll)).Get("/{employeeID}", h.Employee.GetCompanyDetail)
			r.With(perm(user.PermissionEmployeeManage)).Post("/{employeeID}", h.Employee.AddCompanyDetail)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.With(perm(user.PermissionLeaveViewAll)).Get("/", h.Leave.List)
			r.With(perm(user.PermissionLeaveCreate)).Post("/", h.Leave.Create)
			r.With(perm(user.PermissionLeaveViewOwn, user.PermissionLeaveViewAll)).Get("/{id}", h.Leave.Get)
			r.With(perm(user.PermissionLeaveApprove)).Post("/{id}/approve", h.Leave.Approve)
			r.With(perm(user.PermissionLeaveApprove)).Post("/{id}/reject", h.Leave.Reject)

			r.With(selfOr("employeeID", user.PermissionLeaveViewAll)).Get("/employee/{employeeID}", h.Leave.ListByEmployee)
			r.With(selfOr("employeeID", user.PermissionLeaveViewAll)).Get("/employee/{employeeID}/recent", h.Leave.ListRecentByEmployee)
			r.With(perm(user.PermissionLeaveApprove)).Get("/manager/{managerID}/team-leaves", h.Leave.ListTeam)

			r.With(selfOr("employeeID", user.PermissionLeaveViewAll)).Get("/balance/{employeeID}", h.Leave.GetBalance)
			r.With(selfOr("employeeID", user.PermissionLeaveViewAll)).Get("/balance/{employeeID}/remaining", h.Leave.GetRemaining)
			r.With(perm(user.PermissionLeaveManageBalance)).Post("/balance/initialize/{employeeID}", h.Leave.InitializeBalance)
		})

		r.Route("/reporting-managers", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(perm(user.PermissionReportingView))
				r.Get("/", h.Reporting.ListManagers)
				r.Get("/assignments", h.Reporting.ListAssignments)
				r.Get("/available-employees", h.Reporting.ListAvailableEmployees)
				r.Get("/{id}", h.Reporting.GetManager)
			})
			r.Group(func(r chi.Router) {
				r.Use(perm(user.PermissionReportingManage))
				r.Post("/", h.Reporting.Assign)
				r.Delete("/{id}", h.Reporting.RemoveManager)
				r.Post("/promote/{id}", h.Reporting.PromoteToManager)
				r.Post("/promote-hr/{id}", h.Reporting.PromoteToHR)
				r.Delete("/remove-member/{employeeID}", h.Reporting.RemoveTeamMember)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Use(perm(user.PermissionAttendanceView))
			r.Get("/calendar", h.Attendance.Calendar)
			r.Get("/calendar.ics", h.Attendance.CalendarICS)
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.With(perm(user.PermissionTimesheetViewOwn, user.PermissionTimesheetViewAll)).Get("/", h.Timesheet.List)
			r.With(perm(user.PermissionTimesheetCreate)).Post("/", h.Timesheet.Create)
			r.With(perm(user.PermissionTimesheetExport)).Get("/export", h.Timesheet.Export)
			r.With(perm(user.PermissionTimesheetCreate)).Post("/save-weekly", h.Timesheet.SaveWeekly)
			r.With(perm(user.PermissionTimesheetViewOwn, user.PermissionTimesheetViewAll)).Get("/{id}", h.Timesheet.Get)
			r.With(perm(user.PermissionTimesheetCreate)).Put("/{id}", h.Timesheet.Update)
			r.With(perm(user.PermissionTimesheetApprove)).Post("/{id}/approve", h.Timesheet.Approve)
			r.With(perm(user.PermissionTimesheetApprove)).Post("/{id}/reject", h.Timesheet.Reject)
			r.With(perm(user.PermissionTimesheetApprove)).Get("/manager/{managerID}/team-timesheets", h.Timesheet.ListTeam)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.With(perm(user.PermissionDashboardAdmin)).Get("/admin", h.Dashboard.Admin)
			r.With(perm(user.PermissionDashboardTeam, user.PermissionDashboardAdmin)).Get("/team", h.Dashboard.Team)
		})
	})
	return r
}
