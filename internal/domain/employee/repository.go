package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByPhoneNumber(ctx context.Context, phone string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	List(ctx context.Context) ([]Employee, error)
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)
	// ListWithoutCompanyDetail returns employees that have no company detail row.
	ListWithoutCompanyDetail(ctx context.Context) ([]Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetUserID(ctx context.Context, id string, userID *string) error
	SetReportingManager(ctx context.Context, id string, managerID *string) error
	// ClearReportingManagerRefs nulls the deprecated manager column on every
	// employee pointing at managerID.
	ClearReportingManagerRefs(ctx context.Context, managerID string) error
	Delete(ctx context.Context, id string) error
}

type CompanyDetailRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (CompanyDetail, error)
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]CompanyDetail, error)
	Create(ctx context.Context, detail CompanyDetail) (CompanyDetail, error)
	Update(ctx context.Context, detail CompanyDetail) error
	ExistsByCorporateID(ctx context.Context, corporateID string) (bool, error)
	ExistsByCorporateEmail(ctx context.Context, corporateEmail string) (bool, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type ProfileRepository interface {
	ListEducation(ctx context.Context, employeeID string) ([]Education, error)
	CreateEducation(ctx context.Context, e Education) (Education, error)
	DeleteEducationByEmployeeID(ctx context.Context, employeeID string) error

	ListExperience(ctx context.Context, employeeID string) ([]Experience, error)
	CreateExperience(ctx context.Context, e Experience) (Experience, error)
	DeleteExperienceByEmployeeID(ctx context.Context, employeeID string) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
