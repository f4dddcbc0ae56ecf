// Source: service.go
//
// Kept in mockgen's output format. Replace it by running go generate in
// internal/domain/leave after changing service.go:
//
//	mockgen -source=service.go -destination=mock/service_mock.go -package=mock
//

// Package mock holds GoMock doubles for the leave service interfaces.
package mock

import (
	context "context"
	reflect "reflect"

	leave "github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	gomock "go.uber.org/mock/gomock"
)

// MockBalanceService is a mock of BalanceService interface.
type MockBalanceService struct {
	ctrl     *gomock.Controller
	recorder *MockBalanceServiceMockRecorder
	isgomock struct{}
}

// MockBalanceServiceMockRecorder is the mock recorder for MockBalanceService.
type MockBalanceServiceMockRecorder struct {
	mock *MockBalanceService
}

// NewMockBalanceService creates a new mock instance.
func NewMockBalanceService(ctrl *gomock.Controller) *MockBalanceService {
	mock := &MockBalanceService{ctrl: ctrl}
	mock.recorder = &MockBalanceServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBalanceService) EXPECT() *MockBalanceServiceMockRecorder {
	return m.recorder
}

// InitializeLeaveBalance mocks base method.
func (m *MockBalanceService) InitializeLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InitializeLeaveBalance", ctx, employeeID)
	ret0, _ := ret[0].(leave.LeaveBalance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InitializeLeaveBalance indicates an expected call of InitializeLeaveBalance.
func (mr *MockBalanceServiceMockRecorder) InitializeLeaveBalance(ctx any, employeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitializeLeaveBalance", reflect.TypeOf((*MockBalanceService)(nil).InitializeLeaveBalance), ctx, employeeID)
}

// RefreshLeaveBalance mocks base method.
func (m *MockBalanceService) RefreshLeaveBalance(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshLeaveBalance", ctx, balance)
	ret0, _ := ret[0].(leave.LeaveBalance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshLeaveBalance indicates an expected call of RefreshLeaveBalance.
func (mr *MockBalanceServiceMockRecorder) RefreshLeaveBalance(ctx any, balance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshLeaveBalance", reflect.TypeOf((*MockBalanceService)(nil).RefreshLeaveBalance), ctx, balance)
}

// GetLeaveBalance mocks base method.
func (m *MockBalanceService) GetLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLeaveBalance", ctx, employeeID)
	ret0, _ := ret[0].(leave.LeaveBalance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLeaveBalance indicates an expected call of GetLeaveBalance.
func (mr *MockBalanceServiceMockRecorder) GetLeaveBalance(ctx any, employeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLeaveBalance", reflect.TypeOf((*MockBalanceService)(nil).GetLeaveBalance), ctx, employeeID)
}

// GetRemainingLeaves mocks base method.
func (m *MockBalanceService) GetRemainingLeaves(ctx context.Context, employeeID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRemainingLeaves", ctx, employeeID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRemainingLeaves indicates an expected call of GetRemainingLeaves.
func (mr *MockBalanceServiceMockRecorder) GetRemainingLeaves(ctx any, employeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRemainingLeaves", reflect.TypeOf((*MockBalanceService)(nil).GetRemainingLeaves), ctx, employeeID)
}

// RefreshAll mocks base method.
func (m *MockBalanceService) RefreshAll(ctx context.Context) (leave.RefreshSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshAll", ctx)
	ret0, _ := ret[0].(leave.RefreshSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshAll indicates an expected call of RefreshAll.
func (mr *MockBalanceServiceMockRecorder) RefreshAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshAll", reflect.TypeOf((*MockBalanceService)(nil).RefreshAll), ctx)
}

// MockLeaveService is a mock of LeaveService interface.
type MockLeaveService struct {
	ctrl     *gomock.Controller
	recorder *MockLeaveServiceMockRecorder
	isgomock struct{}
}

// MockLeaveServiceMockRecorder is the mock recorder for MockLeaveService.
type MockLeaveServiceMockRecorder struct {
	mock *MockLeaveService
}

// NewMockLeaveService creates a new mock instance.
func NewMockLeaveService(ctrl *gomock.Controller) *MockLeaveService {
	mock := &MockLeaveService{ctrl: ctrl}
	mock.recorder = &MockLeaveServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaveService) EXPECT() *MockLeaveServiceMockRecorder {
	return m.recorder
}

// CreateLeave mocks base method.
func (m *MockLeaveService) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLeave", ctx, req)
	ret0, _ := ret[0].(leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateLeave indicates an expected call of CreateLeave.
func (mr *MockLeaveServiceMockRecorder) CreateLeave(ctx any, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLeave", reflect.TypeOf((*MockLeaveService)(nil).CreateLeave), ctx, req)
}

// ApproveLeave mocks base method.
func (m *MockLeaveService) ApproveLeave(ctx context.Context, id string, approverID string) (leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApproveLeave", ctx, id, approverID)
	ret0, _ := ret[0].(leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApproveLeave indicates an expected call of ApproveLeave.
func (mr *MockLeaveServiceMockRecorder) ApproveLeave(ctx any, id any, approverID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApproveLeave", reflect.TypeOf((*MockLeaveService)(nil).ApproveLeave), ctx, id, approverID)
}

// RejectLeave mocks base method.
func (m *MockLeaveService) RejectLeave(ctx context.Context, id string, approverID string, reason string) (leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RejectLeave", ctx, id, approverID, reason)
	ret0, _ := ret[0].(leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RejectLeave indicates an expected call of RejectLeave.
func (mr *MockLeaveServiceMockRecorder) RejectLeave(ctx any, id any, approverID any, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RejectLeave", reflect.TypeOf((*MockLeaveService)(nil).RejectLeave), ctx, id, approverID, reason)
}

// GetLeave mocks base method.
func (m *MockLeaveService) GetLeave(ctx context.Context, id string) (leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLeave", ctx, id)
	ret0, _ := ret[0].(leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLeave indicates an expected call of GetLeave.
func (mr *MockLeaveServiceMockRecorder) GetLeave(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLeave", reflect.TypeOf((*MockLeaveService)(nil).GetLeave), ctx, id)
}

// GetAllLeaves mocks base method.
func (m *MockLeaveService) GetAllLeaves(ctx context.Context) ([]leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllLeaves", ctx)
	ret0, _ := ret[0].([]leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllLeaves indicates an expected call of GetAllLeaves.
func (mr *MockLeaveServiceMockRecorder) GetAllLeaves(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllLeaves", reflect.TypeOf((*MockLeaveService)(nil).GetAllLeaves), ctx)
}

// GetLeavesByEmployeeID mocks base method.
func (m *MockLeaveService) GetLeavesByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLeavesByEmployeeID", ctx, employeeID)
	ret0, _ := ret[0].([]leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLeavesByEmployeeID indicates an expected call of GetLeavesByEmployeeID.
func (mr *MockLeaveServiceMockRecorder) GetLeavesByEmployeeID(ctx any, employeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLeavesByEmployeeID", reflect.TypeOf((*MockLeaveService)(nil).GetLeavesByEmployeeID), ctx, employeeID)
}

// GetRecentLeavesByEmployeeID mocks base method.
func (m *MockLeaveService) GetRecentLeavesByEmployeeID(ctx context.Context, employeeID string, limit int) ([]leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentLeavesByEmployeeID", ctx, employeeID, limit)
	ret0, _ := ret[0].([]leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentLeavesByEmployeeID indicates an expected call of GetRecentLeavesByEmployeeID.
func (mr *MockLeaveServiceMockRecorder) GetRecentLeavesByEmployeeID(ctx any, employeeID any, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentLeavesByEmployeeID", reflect.TypeOf((*MockLeaveService)(nil).GetRecentLeavesByEmployeeID), ctx, employeeID, limit)
}

// GetTeamLeavesByManagerID mocks base method.
func (m *MockLeaveService) GetTeamLeavesByManagerID(ctx context.Context, managerID string) ([]leave.Leave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTeamLeavesByManagerID", ctx, managerID)
	ret0, _ := ret[0].([]leave.Leave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTeamLeavesByManagerID indicates an expected call of GetTeamLeavesByManagerID.
func (mr *MockLeaveServiceMockRecorder) GetTeamLeavesByManagerID(ctx any, managerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTeamLeavesByManagerID", reflect.TypeOf((*MockLeaveService)(nil).GetTeamLeavesByManagerID), ctx, managerID)
}
