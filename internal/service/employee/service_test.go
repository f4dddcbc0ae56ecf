package employee

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/storage"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	leaveService "github.com/oryfolks/hrms-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "welcome-1"

type employeeFixture struct {
	repos Repositories
	files *storage.LocalStorage
	svc   employee.EmployeeService
}

func newEmployeeFixture(t *testing.T) *employeeFixture {
	s := memory.NewStore()
	repos := Repositories{
		Employee:      memory.NewEmployeeRepository(s),
		CompanyDetail: memory.NewCompanyDetailRepository(s),
		Profile:       memory.NewProfileRepository(s),
		Document:      memory.NewDocumentRepository(s),
		User:          memory.NewUserRepository(s),
		Balance:       memory.NewBalanceRepository(s),
		Leave:         memory.NewLeaveRepository(s),
		Reporting:     memory.NewReportingRepository(s),
		Timesheet:     memory.NewTimesheetRepository(s),
	}
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = files.Close() })

	calc := leaveService.NewEntitlementCalculator(nil)
	balanceSvc := leaveService.NewBalanceService(s, repos.Balance, repos.Employee, repos.CompanyDetail, calc)
	return &employeeFixture{
		repos: repos,
		files: files,
		svc:   NewEmployeeService(s, repos, balanceSvc, files, testPassword),
	}
}

func ptr[T any](v T) *T { return &v }

func joinedYearsAgo(years int) *string {
	return ptr(time.Now().AddDate(-years, 0, -1).Format(time.DateOnly))
}

func createRequest(email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		PersonalDetails: employee.PersonalDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     email,
		},
		JoiningDate: joinedYearsAgo(2),
	}
}

func TestCreateEmployee_Defaults(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	req := createRequest("ada@corp.example")
	req.CreateAccount = true
	req.Education = []employee.EducationRequest{{InstitutionName: "Cambridge", DegreeLevel: "BSc"}}

	created, err := f.svc.CreateEmployee(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.Active)
	require.NotNil(t, created.UserID)

	detail, err := f.svc.GetCompanyDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.PlaceholderCorporateID, detail.CorporateID)
	assert.Equal(t, "ada@corp.example", detail.CorporateEmail)
	assert.Equal(t, employee.DefaultDesignation, detail.Designation)

	account, err := f.repos.User.GetByID(ctx, *created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ada@corp.example", account.Username)
	assert.Equal(t, user.RoleEmployee, account.Role)
	require.NotNil(t, account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(testPassword)))

	profile, err := f.svc.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Balance)
	assert.Equal(t, 10, profile.Balance.CasualTotal)
	assert.Equal(t, 6, profile.Balance.SickTotal)
	assert.Len(t, profile.Education, 1)
	assert.NotNil(t, profile.Account)
}

func TestCreateEmployee_Conflicts(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	first := createRequest("a@corp.example")
	first.CorporateID = ptr("C-001")
	_, err := f.svc.CreateEmployee(ctx, first)
	require.NoError(t, err)

	_, err = f.svc.CreateEmployee(ctx, createRequest("A@corp.example"))
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	dupID := createRequest("b@corp.example")
	dupID.CorporateID = ptr("C-001")
	_, err = f.svc.CreateEmployee(ctx, dupID)
	assert.ErrorIs(t, err, employee.ErrCorporateIDExists)

	dupCorpEmail := createRequest("c@corp.example")
	dupCorpEmail.CorporateEmail = ptr("a@corp.example")
	_, err = f.svc.CreateEmployee(ctx, dupCorpEmail)
	assert.ErrorIs(t, err, employee.ErrCorporateEmailExists)

	// placeholder corporate IDs may repeat
	_, err = f.svc.CreateEmployee(ctx, createRequest("d@corp.example"))
	require.NoError(t, err)
	_, err = f.svc.CreateEmployee(ctx, createRequest("e@corp.example"))
	require.NoError(t, err)

	all, err := f.svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateEmployee_JoiningDateRefreshesBalance(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	req := createRequest("new@corp.example")
	req.JoiningDate = ptr(time.Now().Format(time.DateOnly))
	created, err := f.svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	balance, err := f.repos.Balance.GetByEmployeeID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.Entitlement{}, balance.Entitlement())

	_, err = f.svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
		PersonalDetails: req.PersonalDetails,
		Designation:     ptr("Engineer"),
		JoiningDate:     joinedYearsAgo(1),
	})
	require.NoError(t, err)

	balance, err = f.repos.Balance.GetByEmployeeID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.CasualTotal)
	assert.Equal(t, 1, balance.EarnedTotal)

	detail, err := f.svc.GetCompanyDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", detail.Designation)
}

func TestUpdateEmployee_EmailConflict(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateEmployee(ctx, createRequest("taken@corp.example"))
	require.NoError(t, err)
	other, err := f.svc.CreateEmployee(ctx, createRequest("other@corp.example"))
	require.NoError(t, err)

	_, err = f.svc.UpdateEmployee(ctx, other.ID, employee.UpdateEmployeeRequest{
		PersonalDetails: employee.PersonalDetails{FirstName: "O", LastName: "T", Email: "taken@corp.example"},
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	// keeping one's own email is not a conflict
	_, err = f.svc.UpdateEmployee(ctx, other.ID, employee.UpdateEmployeeRequest{
		PersonalDetails: employee.PersonalDetails{FirstName: "O", LastName: "T", Email: "OTHER@corp.example"},
	})
	assert.NoError(t, err)
}

func TestDeactivateEmployee(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, createRequest("leaver@corp.example"))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeactivateEmployee(ctx, created.ID))
	got, err := f.svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	assert.ErrorIs(t, f.svc.DeactivateEmployee(ctx, created.ID), employee.ErrEmployeeAlreadyInactive)
}

func TestCompanyDetail(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	bare, err := f.repos.Employee.Create(ctx, employee.Employee{FirstName: "No", LastName: "Detail", Email: "bare@corp.example", Active: true})
	require.NoError(t, err)

	missing, err := f.svc.ListEmployeesWithoutCompanyDetail(ctx)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, bare.ID, missing[0].ID)

	_, err = f.svc.GetCompanyDetail(ctx, bare.ID)
	assert.ErrorIs(t, err, employee.ErrCompanyDetailNotFound)

	detail, err := f.svc.AddCompanyDetail(ctx, bare.ID, employee.CompanyDetailRequest{
		CorporateID:    "C-100",
		CorporateEmail: "no.detail@corp.example",
	})
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultDesignation, detail.Designation)

	_, err = f.svc.AddCompanyDetail(ctx, bare.ID, employee.CompanyDetailRequest{CorporateEmail: "again@corp.example"})
	assert.ErrorIs(t, err, employee.ErrCompanyDetailExists)

	missing, err = f.svc.ListEmployeesWithoutCompanyDetail(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestDocuments(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	owner, err := f.svc.CreateEmployee(ctx, createRequest("owner@corp.example"))
	require.NoError(t, err)
	other, err := f.svc.CreateEmployee(ctx, createRequest("other@corp.example"))
	require.NoError(t, err)

	doc, err := f.svc.AddDocument(ctx, owner.ID, employee.AddDocumentRequest{
		DocumentType: "IDENTITY",
		DocumentName: "Passport",
		FileName:     "passport.pdf",
		FileURL:      "https://files.corp.example/passport.pdf",
		ContentType:  "application/pdf",
		FileSize:     2048,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteDocument(ctx, other.ID, doc.ID), employee.ErrDocumentNotFound)

	docs, err := f.svc.ListDocuments(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, f.svc.DeleteDocument(ctx, owner.ID, doc.ID))
	docs, err = f.svc.ListDocuments(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = f.svc.AddDocument(ctx, "missing", employee.AddDocumentRequest{
		DocumentType: "OTHER", DocumentName: "x", FileName: "x", FileURL: "x",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUploadDocument(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	owner, err := f.svc.CreateEmployee(ctx, createRequest("owner@corp.example"))
	require.NoError(t, err)
	other, err := f.svc.CreateEmployee(ctx, createRequest("other@corp.example"))
	require.NoError(t, err)

	doc, err := f.svc.UploadDocument(ctx, owner.ID, employee.UploadDocumentRequest{
		DocumentType: "GRADUATION",
		DocumentName: "Degree",
		FileName:     "Degree.PDF",
		ContentType:  "application/pdf",
	}, strings.NewReader("certificate"))
	require.NoError(t, err)
	assert.EqualValues(t, len("certificate"), doc.FileSize)
	assert.Equal(t, "employees/"+owner.ID+"/"+doc.ID+".pdf", doc.StoragePath)
	assert.Equal(t, "/api/v1/employees/"+owner.ID+"/documents/"+doc.ID+"/file", doc.FileURL)

	got, rc, err := f.svc.OpenDocument(ctx, owner.ID, doc.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "certificate", string(body))
	assert.Equal(t, "Degree", got.DocumentName)

	_, _, err = f.svc.OpenDocument(ctx, other.ID, doc.ID)
	assert.ErrorIs(t, err, employee.ErrDocumentNotFound)

	require.NoError(t, f.svc.DeleteDocument(ctx, owner.ID, doc.ID))
	_, err = f.files.Open(ctx, doc.StoragePath)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestUploadDocument_Errors(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	owner, err := f.svc.CreateEmployee(ctx, createRequest("owner@corp.example"))
	require.NoError(t, err)

	_, err = f.svc.UploadDocument(ctx, owner.ID, employee.UploadDocumentRequest{DocumentType: "PAYSLIP"}, strings.NewReader("x"))
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 3)

	_, err = f.svc.UploadDocument(ctx, "missing", employee.UploadDocumentRequest{
		DocumentType: "OTHER", DocumentName: "x", FileName: "x.txt",
	}, strings.NewReader("x"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	linked, err := f.svc.AddDocument(ctx, owner.ID, employee.AddDocumentRequest{
		DocumentType: "OTHER", DocumentName: "Link", FileName: "link", FileURL: "https://files.corp.example/link",
	})
	require.NoError(t, err)
	_, _, err = f.svc.OpenDocument(ctx, owner.ID, linked.ID)
	assert.ErrorIs(t, err, employee.ErrDocumentFileNotFound)
}

func TestDeleteEmployee_RemovesUploadedFiles(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	owner, err := f.svc.CreateEmployee(ctx, createRequest("owner@corp.example"))
	require.NoError(t, err)
	doc, err := f.svc.UploadDocument(ctx, owner.ID, employee.UploadDocumentRequest{
		DocumentType: "IDENTITY", DocumentName: "Passport", FileName: "passport.png",
	}, strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", doc.ContentType)

	require.NoError(t, f.svc.DeleteEmployee(ctx, owner.ID))

	_, err = f.files.Open(ctx, doc.StoragePath)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestDeleteEmployee_Cascades(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()
	r := f.repos

	// doomed manages member, is HR for member, and reviewed member's records
	managerReq := createRequest("doomed@corp.example")
	managerReq.CreateAccount = true
	managerReq.Experience = []employee.ExperienceRequest{{EmployerName: "Acme"}}
	doomed, err := f.svc.CreateEmployee(ctx, managerReq)
	require.NoError(t, err)
	member, err := f.svc.CreateEmployee(ctx, createRequest("member@corp.example"))
	require.NoError(t, err)

	_, err = r.Reporting.Upsert(ctx, reporting.EmployeeReporting{
		EmployeeID:                 member.ID,
		ReportingManagerID:         &doomed.ID,
		HRID:                       &doomed.ID,
		PreviousReportingManagerID: &doomed.ID,
	})
	require.NoError(t, err)
	require.NoError(t, r.Employee.SetReportingManager(ctx, member.ID, &doomed.ID))

	reviewedAt := time.Now()
	memberLeave, err := r.Leave.Create(ctx, leave.Leave{
		EmployeeID: member.ID, StartDate: time.Now(), EndDate: time.Now(),
		LeaveType: leave.LeaveTypeCasual, Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)
	memberLeave.Status = leave.LeaveStatusApproved
	memberLeave.ApprovedBy = doomed.UserID
	memberLeave.ReviewedAt = &reviewedAt
	require.NoError(t, r.Leave.UpdateReview(ctx, memberLeave))

	entry, err := r.Timesheet.Create(ctx, timesheet.Timesheet{
		EmployeeID: member.ID, Date: time.Now(), StartTime: "09:00", EndTime: "17:00",
		Status: timesheet.StatusApproved, ReviewedBy: doomed.UserID, ReviewedAt: &reviewedAt,
	})
	require.NoError(t, err)

	_, err = r.Timesheet.Create(ctx, timesheet.Timesheet{
		EmployeeID: doomed.ID, Date: time.Now(), StartTime: "09:00", EndTime: "12:00", Status: timesheet.StatusPending,
	})
	require.NoError(t, err)
	_, err = r.Leave.Create(ctx, leave.Leave{
		EmployeeID: doomed.ID, StartDate: time.Now(), EndDate: time.Now(),
		LeaveType: leave.LeaveTypeSick, Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteEmployee(ctx, doomed.ID))

	_, err = f.svc.GetEmployee(ctx, doomed.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = r.User.GetByID(ctx, *doomed.UserID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = r.CompanyDetail.GetByEmployeeID(ctx, doomed.ID)
	assert.ErrorIs(t, err, employee.ErrCompanyDetailNotFound)
	_, err = r.Balance.GetByEmployeeID(ctx, doomed.ID)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)

	ownLeaves, err := r.Leave.ListByEmployeeID(ctx, doomed.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, ownLeaves)
	ownEntries, err := r.Timesheet.List(ctx, timesheet.Filter{EmployeeID: &doomed.ID})
	require.NoError(t, err)
	assert.Empty(t, ownEntries)
	experience, err := r.Profile.ListExperience(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, experience)

	edge, err := r.Reporting.GetByEmployeeID(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, edge.ReportingManagerID)
	assert.Nil(t, edge.HRID)
	assert.Nil(t, edge.PreviousReportingManagerID)

	survivor, err := f.svc.GetEmployee(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.ReportingManagerID)

	keptLeave, err := r.Leave.GetByID(ctx, memberLeave.ID)
	require.NoError(t, err)
	assert.Nil(t, keptLeave.ApprovedBy)
	assert.Equal(t, leave.LeaveStatusApproved, keptLeave.Status)

	keptEntry, err := r.Timesheet.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, keptEntry.ReviewedBy)
}

func TestDeleteEmployee_Unknown(t *testing.T) {
	f := newEmployeeFixture(t)
	assert.ErrorIs(t, f.svc.DeleteEmployee(context.Background(), "missing"), employee.ErrEmployeeNotFound)
}
