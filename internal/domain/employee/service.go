package employee

import (
	"context"
	"io"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee onboards an employee with company detail, history,
	// an optional login account and an initialized leave balance
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	GetEmployeeByUserID(ctx context.Context, userID string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	// DeactivateEmployee soft deletes by clearing the active flag
	DeactivateEmployee(ctx context.Context, id string) error
	// DeleteEmployee removes the employee and everything that references it
	DeleteEmployee(ctx context.Context, id string) error
	GetProfile(ctx context.Context, id string) (Profile, error)

	GetCompanyDetail(ctx context.Context, employeeID string) (CompanyDetail, error)
	AddCompanyDetail(ctx context.Context, employeeID string, req CompanyDetailRequest) (CompanyDetail, error)
	ListEmployeesWithoutCompanyDetail(ctx context.Context) ([]Employee, error)

	AddDocument(ctx context.Context, employeeID string, req AddDocumentRequest) (Document, error)
	// UploadDocument stores file and registers it as a document of employeeID
	UploadDocument(ctx context.Context, employeeID string, req UploadDocumentRequest, file io.Reader) (Document, error)
	// OpenDocument returns an uploaded document with its content; the caller
	// closes the reader
	OpenDocument(ctx context.Context, employeeID, documentID string) (Document, io.ReadCloser, error)
	ListDocuments(ctx context.Context, employeeID string) ([]Document, error)
	DeleteDocument(ctx context.Context, employeeID, documentID string) error
}

// Profile aggregates everything shown on an employee's profile page.
type Profile struct {
	Employee      Employee
	Account       *user.User
	CompanyDetail *CompanyDetail
	Education     []Education
	Experience    []Experience
	Documents     []Document
	Balance       *leave.LeaveBalance
}

type ProfileResponse struct {
	Employee      EmployeeResponse       `json:"employee"`
	Account       *user.UserResponse     `json:"account,omitempty"`
	CompanyDetail *CompanyDetailResponse `json:"company_detail,omitempty"`
	Education     []EducationResponse    `json:"education"`
	Experience    []ExperienceResponse   `json:"experience"`
	Documents     []DocumentResponse     `json:"documents"`
	Balance       *leave.BalanceResponse `json:"leave_balance,omitempty"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		Employee:   NewEmployeeResponse(p.Employee),
		Education:  make([]EducationResponse, 0, len(p.Education)),
		Experience: make([]ExperienceResponse, 0, len(p.Experience)),
		Documents:  NewDocumentResponses(p.Documents),
	}
	if p.Account != nil {
		account := user.NewUserResponse(*p.Account)
		resp.Account = &account
	}
	if p.CompanyDetail != nil {
		detail := NewCompanyDetailResponse(*p.CompanyDetail)
		resp.CompanyDetail = &detail
	}
	for _, ed := range p.Education {
		resp.Education = append(resp.Education, EducationResponse{
			ID:              ed.ID,
			InstitutionName: ed.InstitutionName,
			DegreeLevel:     ed.DegreeLevel,
			StartYear:       ed.StartYear,
			EndYear:         ed.EndYear,
		})
	}
	for _, ex := range p.Experience {
		resp.Experience = append(resp.Experience, ExperienceResponse{
			ID:              ex.ID,
			EmployerName:    ex.EmployerName,
			BusinessType:    ex.BusinessType,
			Designation:     ex.Designation,
			StartDate:       formatOptionalDate(ex.StartDate),
			EndDate:         formatOptionalDate(ex.EndDate),
			EmployerAddress: ex.EmployerAddress,
		})
	}
	if p.Balance != nil {
		balance := leave.NewBalanceResponse(*p.Balance)
		resp.Balance = &balance
	}
	return resp
}
