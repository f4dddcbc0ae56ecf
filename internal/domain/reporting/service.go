package reporting

import (
	"context"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
)

// Service maintains the manager/HR assignment graph and keeps roles in sync
// with graph membership.
type Service interface {
	CreateOrUpdate(ctx context.Context, req AssignRequest) (EmployeeReporting, error)
	PromoteToManager(ctx context.Context, employeeID string) (employee.Employee, error)
	PromoteToHR(ctx context.Context, employeeID string) (employee.Employee, error)
	RemoveManager(ctx context.Context, managerID string) error
	RemoveTeamMember(ctx context.Context, employeeID string) error
	// ChainUnderAdmin points every manager and HR employee at the admin.
	ChainUnderAdmin(ctx context.Context) error

	ListManagers(ctx context.Context) ([]ManagerSummary, error)
	GetManagerDetails(ctx context.Context, managerID string) (ManagerDetails, error)
	GetAvailableEmployees(ctx context.Context) ([]MemberSummary, error)
	ListAllAssignments(ctx context.Context) ([]AssignmentView, error)
	// TeamMemberIDs lists the employees whose manager edge points at managerID.
	TeamMemberIDs(ctx context.Context, managerID string) ([]string, error)
}
