package reporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

// ListManagers implements reporting.Service.
func (s *ReportingServiceImpl) ListManagers(ctx context.Context) ([]reporting.ManagerSummary, error) {
	managers, err := s.employeesWithRole(ctx, user.RoleReportingManager)
	if err != nil {
		return nil, err
	}
	corpEmails, err := s.corporateEmails(ctx, managers)
	if err != nil {
		return nil, err
	}

	out := make([]reporting.ManagerSummary, 0, len(managers))
	for _, m := range managers {
		out = append(out, reporting.ManagerSummary{
			ID:             m.ID,
			FullName:       m.FullName(),
			Email:          m.Email,
			CorporateEmail: corpEmails[m.ID],
		})
	}
	return out, nil
}

// GetManagerDetails implements reporting.Service.
func (s *ReportingServiceImpl) GetManagerDetails(ctx context.Context, managerID string) (reporting.ManagerDetails, error) {
	manager, err := s.EmployeeRepository.GetByID(ctx, managerID)
	if err != nil {
		return reporting.ManagerDetails{}, err
	}

	memberIDs, err := s.TeamMemberIDs(ctx, managerID)
	if err != nil {
		return reporting.ManagerDetails{}, err
	}
	team, err := s.EmployeeRepository.ListByIDs(ctx, memberIDs)
	if err != nil {
		return reporting.ManagerDetails{}, fmt.Errorf("failed to load team: %w", err)
	}

	corpEmails, err := s.corporateEmails(ctx, append(team, manager))
	if err != nil {
		return reporting.ManagerDetails{}, err
	}

	return reporting.ManagerDetails{
		ManagerID:      manager.ID,
		FullName:       manager.FullName(),
		Email:          manager.Email,
		CorporateEmail: corpEmails[manager.ID],
		Team:           memberSummaries(team, corpEmails),
	}, nil
}

// GetAvailableEmployees implements reporting.Service. Only plain employees
// are offered for assignment.
func (s *ReportingServiceImpl) GetAvailableEmployees(ctx context.Context) ([]reporting.MemberSummary, error) {
	employees, err := s.employeesWithRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, err
	}
	corpEmails, err := s.corporateEmails(ctx, employees)
	if err != nil {
		return nil, err
	}
	return memberSummaries(employees, corpEmails), nil
}

// ListAllAssignments implements reporting.Service.
func (s *ReportingServiceImpl) ListAllAssignments(ctx context.Context) ([]reporting.AssignmentView, error) {
	assignments, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	ids := make([]string, 0, len(assignments)*2)
	for _, a := range assignments {
		ids = append(ids, a.EmployeeID)
		if a.ReportingManagerID != nil {
			ids = append(ids, *a.ReportingManagerID)
		}
		if a.HRID != nil {
			ids = append(ids, *a.HRID)
		}
	}
	employees, err := s.EmployeeRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	roles := make(map[string]user.Role, len(users))
	for _, u := range users {
		roles[u.ID] = u.Role
	}
	roleOf := func(e employee.Employee) *string {
		if e.UserID == nil {
			return nil
		}
		role, ok := roles[*e.UserID]
		if !ok {
			return nil
		}
		name := string(role)
		return &name
	}

	corpEmails, err := s.corporateEmails(ctx, employees)
	if err != nil {
		return nil, err
	}

	views := make([]reporting.AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		view := reporting.AssignmentView{
			EmployeeID:        a.EmployeeID,
			EmployeeName:      byID[a.EmployeeID].FullName(),
			ManagerID:         a.ReportingManagerID,
			HRID:              a.HRID,
			PreviousManagerID: a.PreviousReportingManagerID,
		}
		if a.ReportingManagerID != nil {
			if m, ok := byID[*a.ReportingManagerID]; ok {
				name, email := m.FullName(), m.Email
				view.ManagerName = &name
				view.ManagerEmail = &email
				view.ManagerCorpEmail = corpEmails[m.ID]
				view.ManagerRole = roleOf(m)
			}
		}
		if a.HRID != nil {
			if h, ok := byID[*a.HRID]; ok {
				name := h.FullName()
				view.HRName = &name
				view.HRRole = roleOf(h)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// TeamMemberIDs implements reporting.Service.
func (s *ReportingServiceImpl) TeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	team, err := s.Repository.ListByManagerID(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team of %s: %w", managerID, err)
	}
	ids := make([]string, 0, len(team))
	for _, a := range team {
		ids = append(ids, a.EmployeeID)
	}
	return ids, nil
}

// employeesWithRole returns the employee records of users holding role,
// skipping accounts without one.
func (s *ReportingServiceImpl) employeesWithRole(ctx context.Context, role user.Role) ([]employee.Employee, error) {
	users, err := s.UserRepository.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with role %s: %w", role, err)
	}

	employees := make([]employee.Employee, 0, len(users))
	for _, u := range users {
		emp, err := s.EmployeeRepository.GetByUserID(ctx, u.ID)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func (s *ReportingServiceImpl) corporateEmails(ctx context.Context, employees []employee.Employee) (map[string]*string, error) {
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	details, err := s.CompanyDetailRepository.ListByEmployeeIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load company details: %w", err)
	}

	emails := make(map[string]*string, len(details))
	for _, d := range details {
		email := d.CorporateEmail
		emails[d.EmployeeID] = &email
	}
	return emails, nil
}

func memberSummaries(employees []employee.Employee, corpEmails map[string]*string) []reporting.MemberSummary {
	out := make([]reporting.MemberSummary, 0, len(employees))
	for _, e := range employees {
		out = append(out, reporting.MemberSummary{
			ID:             e.ID,
			FullName:       e.FullName(),
			Email:          e.Email,
			CorporateEmail: corpEmails[e.ID],
		})
	}
	return out
}
