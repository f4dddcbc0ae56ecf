package postgresql_test

import (
	"context"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_UniqueEmail(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@corp.example", Active: true})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{FirstName: "Ada", LastName: "Again", Email: "ada@corp.example", Active: true})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	got, err := repo.GetByEmail(ctx, "ada@corp.example")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	missing, err := repo.ListWithoutCompanyDetail(ctx)
	require.NoError(t, err)
	assert.Len(t, missing, 1)
}

func TestReportingRepository_UpsertAndClear(t *testing.T) {
	setup := NewTestDatabase(t)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewReportingRepository(setup.DB)
	ctx := context.Background()

	manager, err := employees.Create(ctx, employee.Employee{FirstName: "M", LastName: "One", Email: "m@corp.example", Active: true})
	require.NoError(t, err)
	member, err := employees.Create(ctx, employee.Employee{FirstName: "E", LastName: "One", Email: "e@corp.example", Active: true})
	require.NoError(t, err)

	first, err := repo.Upsert(ctx, reporting.EmployeeReporting{EmployeeID: member.ID, ReportingManagerID: &manager.ID, HRID: &manager.ID})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, reporting.EmployeeReporting{EmployeeID: member.ID, ReportingManagerID: &manager.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.HRID)

	team, err := repo.ListByManagerID(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)

	require.NoError(t, repo.ClearManager(ctx, manager.ID))
	got, err := repo.GetByEmployeeID(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ReportingManagerID)

	require.NoError(t, repo.DeleteByEmployeeID(ctx, member.ID))
	_, err = repo.GetByEmployeeID(ctx, member.ID)
	assert.ErrorIs(t, err, reporting.ErrAssignmentNotFound)
}

func TestBalanceRepository_OnePerEmployee(t *testing.T) {
	setup := NewTestDatabase(t)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewBalanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employees.Create(ctx, employee.Employee{FirstName: "B", LastName: "One", Email: "b@corp.example", Active: true})
	require.NoError(t, err)

	created, err := repo.Create(ctx, leave.LeaveBalance{EmployeeID: emp.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, leave.LeaveBalance{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, leave.ErrBalanceAlreadyExists)

	created.SetEntitlement(leave.Entitlement{Casual: 10, Sick: 6, Earned: 2})
	require.NoError(t, repo.UpdateTotals(ctx, created))
	created.ApplyUsage(leave.LeaveTypeCasual, 3)
	require.NoError(t, repo.UpdateUsage(ctx, created))

	got, err := repo.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Remaining(leave.LeaveTypeCasual))
	assert.Equal(t, 2, got.EarnedTotal)
}
