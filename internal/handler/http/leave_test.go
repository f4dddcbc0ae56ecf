package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave/mock"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/authz"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type leaveFixture struct {
	leaveSvc   *mock.MockLeaveService
	balanceSvc *mock.MockBalanceService
	router     chi.Router
}

// newLeaveFixture mounts the leave routes behind a middleware that installs
// the given caller identity.
func newLeaveFixture(t *testing.T, caller jwt.Claims) leaveFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	f := leaveFixture{
		leaveSvc:   mock.NewMockLeaveService(ctrl),
		balanceSvc: mock.NewMockBalanceService(ctrl),
	}
	h := NewLeaveHandler(f.leaveSvc, f.balanceSvc, enforcer)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithClaims(req.Context(), caller)))
		})
	})
	r.Post("/leaves", h.Create)
	r.Get("/leaves/{id}", h.Get)
	r.Post("/leaves/{id}/approve", h.Approve)
	r.Post("/leaves/{id}/reject", h.Reject)
	r.With(middleware.RequireSelfOr(enforcer, "employeeID", user.PermissionLeaveViewAll)).
		Get("/leaves/balance/{employeeID}", h.GetBalance)
	f.router = r
	return f
}

func employeeCaller(employeeID string) jwt.Claims {
	return jwt.Claims{UserID: "user-" + employeeID, EmployeeID: &employeeID, Role: user.RoleEmployee}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("defaults employee to caller", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))
		f.leaveSvc.EXPECT().
			CreateLeave(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
				assert.Equal(t, "emp-1", req.EmployeeID)
				assert.Equal(t, "CASUAL", req.LeaveType)
				return leave.Leave{
					ID:            "leave-1",
					EmployeeID:    "emp-1",
					StartDate:     time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
					EndDate:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
					LeaveType:     leave.LeaveTypeCasual,
					Status:        leave.LeaveStatusPending,
					DaysRequested: 5,
				}, nil
			})

		body := `{"start_date":"2025-01-06","end_date":"2025-01-10","leave_type":"CASUAL","reason":"trip"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody(t, rec)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "leave-1", data["id"])
		assert.EqualValues(t, 5, data["days_requested"])
	})

	t.Run("employee cannot file for someone else", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))

		body := `{"employee_id":"emp-2","start_date":"2025-01-06","end_date":"2025-01-10","leave_type":"CASUAL"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("insufficient balance is a bad request", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))
		f.leaveSvc.EXPECT().CreateLeave(gomock.Any(), gomock.Any()).Return(leave.Leave{}, leave.ErrInsufficientBalance)

		body := `{"start_date":"2025-01-06","end_date":"2025-01-10","leave_type":"SICK"}`
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decodeBody(t, rec).Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeaveHandler_Get_HidesOtherEmployeesLeave(t *testing.T) {
	f := newLeaveFixture(t, employeeCaller("emp-1"))
	f.leaveSvc.EXPECT().GetLeave(gomock.Any(), "leave-9").Return(leave.Leave{ID: "leave-9", EmployeeID: "emp-2"}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves/leave-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaveHandler_Approve(t *testing.T) {
	managerID := "emp-m"
	caller := jwt.Claims{UserID: "user-m", EmployeeID: &managerID, Role: user.RoleReportingManager}

	t.Run("approver is the calling user", func(t *testing.T) {
		f := newLeaveFixture(t, caller)
		f.leaveSvc.EXPECT().ApproveLeave(gomock.Any(), "leave-1", "user-m").
			Return(leave.Leave{ID: "leave-1", Status: leave.LeaveStatusApproved}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves/leave-1/approve", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec).Data.(map[string]any)
		assert.Equal(t, "APPROVED", data["status"])
	})

	t.Run("already reviewed is a conflict", func(t *testing.T) {
		f := newLeaveFixture(t, caller)
		f.leaveSvc.EXPECT().ApproveLeave(gomock.Any(), "leave-1", "user-m").Return(leave.Leave{}, leave.ErrInvalidTransition)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves/leave-1/approve", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLeaveHandler_Reject_PassesReason(t *testing.T) {
	managerID := "emp-m"
	f := newLeaveFixture(t, jwt.Claims{UserID: "user-m", EmployeeID: &managerID, Role: user.RoleReportingManager})
	f.leaveSvc.EXPECT().RejectLeave(gomock.Any(), "leave-1", "user-m", "short staffed").
		Return(leave.Leave{ID: "leave-1", Status: leave.LeaveStatusRejected}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves/leave-1/reject",
		bytes.NewBufferString(`{"reason":"short staffed"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeaveHandler_GetBalance(t *testing.T) {
	t.Run("own balance", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))
		f.balanceSvc.EXPECT().GetLeaveBalance(gomock.Any(), "emp-1").
			Return(leave.LeaveBalance{EmployeeID: "emp-1", CasualTotal: 10, CasualUsed: 3}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves/balance/emp-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec).Data.(map[string]any)
		assert.EqualValues(t, 7, data["casual_leaves_remaining"])
	})

	t.Run("another employee's balance is forbidden", func(t *testing.T) {
		f := newLeaveFixture(t, employeeCaller("emp-1"))

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves/balance/emp-2", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("hr may read any balance", func(t *testing.T) {
		f := newLeaveFixture(t, jwt.Claims{UserID: "user-hr", Role: user.RoleHR})
		f.balanceSvc.EXPECT().GetLeaveBalance(gomock.Any(), "emp-2").Return(leave.LeaveBalance{}, leave.ErrBalanceNotFound)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves/balance/emp-2", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
