package employee

import (
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

type EducationRequest struct {
	InstitutionName string `json:"institution_name"`
	DegreeLevel     string `json:"degree_level"`
	StartYear       *int   `json:"start_year,omitempty"`
	EndYear         *int   `json:"end_year,omitempty"`
}

type ExperienceRequest struct {
	EmployerName    string  `json:"employer_name"`
	BusinessType    *string `json:"business_type,omitempty"`
	Designation     *string `json:"designation,omitempty"`
	StartDate       *string `json:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
	EmployerAddress *string `json:"employer_address,omitempty"`
}

// PersonalDetails holds the fields shared by create and update requests.
type PersonalDetails struct {
	FirstName             string  `json:"first_name"`
	MiddleName            *string `json:"middle_name,omitempty"`
	LastName              string  `json:"last_name"`
	Email                 string  `json:"email"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	AlternatePhone        *string `json:"alternate_phone,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	BloodGroup            *string `json:"blood_group,omitempty"`
	MaritalStatus         *string `json:"marital_status,omitempty"`
	PresentAddress        *string `json:"present_address,omitempty"`
	PermanentAddress      *string `json:"permanent_address,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyRelationship *string `json:"emergency_relationship,omitempty"`
	EmergencyPhone        *string `json:"emergency_phone,omitempty"`
}

func (p *PersonalDetails) validate(errs *validator.ValidationErrors) {
	if validator.IsEmpty(p.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if validator.IsEmpty(p.LastName) {
		errs.Add("last_name", "last_name is required")
	}
	if validator.IsEmpty(p.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(p.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if p.PhoneNumber != nil && !validator.IsValidPhoneNumber(*p.PhoneNumber) {
		errs.Add("phone_number", "phone_number must contain 7-15 digits")
	}
	if p.DateOfBirth != nil {
		if dob, ok := validator.IsValidDate(*p.DateOfBirth); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		} else if dob.After(time.Now()) {
			errs.Add("date_of_birth", "date_of_birth cannot be in the future")
		}
	}
}

// Apply copies the personal fields onto e. Call after Validate.
func (p *PersonalDetails) Apply(e *Employee) {
	e.FirstName = p.FirstName
	e.MiddleName = p.MiddleName
	e.LastName = p.LastName
	e.Email = p.Email
	e.PhoneNumber = p.PhoneNumber
	e.AlternatePhone = p.AlternatePhone
	e.DOB = parseOptionalDate(p.DateOfBirth)
	e.Gender = p.Gender
	e.BloodGroup = p.BloodGroup
	e.MaritalStatus = p.MaritalStatus
	e.PresentAddress = p.PresentAddress
	e.PermanentAddress = p.PermanentAddress
	e.EmergencyContactName = p.EmergencyContactName
	e.EmergencyRelationship = p.EmergencyRelationship
	e.EmergencyPhone = p.EmergencyPhone
}

type CreateEmployeeRequest struct {
	PersonalDetails
	CorporateID    *string             `json:"corporate_id,omitempty"`
	CorporateEmail *string             `json:"corporate_email,omitempty"`
	Designation    *string             `json:"designation,omitempty"`
	JoiningDate    *string             `json:"joining_date,omitempty"`
	Education      []EducationRequest  `json:"education,omitempty"`
	Experience     []ExperienceRequest `json:"experience,omitempty"`
	CreateAccount  bool                `json:"create_account"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.PersonalDetails.validate(&errs)
	validateCompanyFields(&errs, r.CorporateEmail, r.JoiningDate)
	validateHistory(&errs, r.Education, r.Experience)

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	PersonalDetails
	Active         *bool   `json:"active,omitempty"`
	CorporateID    *string `json:"corporate_id,omitempty"`
	CorporateEmail *string `json:"corporate_email,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	JoiningDate    *string `json:"joining_date,omitempty"`
	// Nil leaves the stored records untouched; an empty slice clears them.
	Education  []EducationRequest  `json:"education"`
	Experience []ExperienceRequest `json:"experience"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.PersonalDetails.validate(&errs)
	validateCompanyFields(&errs, r.CorporateEmail, r.JoiningDate)
	validateHistory(&errs, r.Education, r.Experience)

	return errs.Err()
}

// HasCompanyDetail reports whether the update touches the company detail row.
func (r *UpdateEmployeeRequest) HasCompanyDetail() bool {
	return r.CorporateID != nil || r.CorporateEmail != nil || r.Designation != nil || r.JoiningDate != nil
}

type CompanyDetailRequest struct {
	CorporateID    string  `json:"corporate_id"`
	CorporateEmail string  `json:"corporate_email"`
	Designation    string  `json:"designation"`
	JoiningDate    *string `json:"joining_date,omitempty"`
}

func (r *CompanyDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CorporateEmail) {
		errs.Add("corporate_email", "corporate_email is required")
	}
	validateCompanyFields(&errs, &r.CorporateEmail, r.JoiningDate)

	return errs.Err()
}

type AddDocumentRequest struct {
	DocumentType string `json:"document_type"`
	DocumentName string `json:"document_name"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	ContentType  string `json:"content_type"`
	FileSize     int64  `json:"file_size"`
}

func (r *AddDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs.Add("document_type", "document_type is not supported")
	}
	if validator.IsEmpty(r.DocumentName) {
		errs.Add("document_name", "document_name is required")
	}
	if validator.IsEmpty(r.FileName) {
		errs.Add("file_name", "file_name is required")
	}
	if validator.IsEmpty(r.FileURL) {
		errs.Add("file_url", "file_url is required")
	}
	if r.FileSize < 0 {
		errs.Add("file_size", "file_size must not be negative")
	}

	return errs.Err()
}

// UploadDocumentRequest carries the form fields sent with an uploaded file.
type UploadDocumentRequest struct {
	DocumentType string
	DocumentName string
	FileName     string
	ContentType  string
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs.Add("document_type", "document_type is not supported")
	}
	if validator.IsEmpty(r.DocumentName) {
		errs.Add("document_name", "document_name is required")
	}
	if validator.IsEmpty(r.FileName) {
		errs.Add("file", "file is required")
	}

	return errs.Err()
}

func validateCompanyFields(errs *validator.ValidationErrors, corporateEmail, joiningDate *string) {
	if corporateEmail != nil && !validator.IsEmpty(*corporateEmail) && !validator.IsValidEmail(*corporateEmail) {
		errs.Add("corporate_email", "corporate_email must be a valid email address")
	}
	if joiningDate != nil {
		if _, ok := validator.IsValidDate(*joiningDate); !ok {
			errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
		}
	}
}

func validateHistory(errs *validator.ValidationErrors, education []EducationRequest, experience []ExperienceRequest) {
	for _, ed := range education {
		if validator.IsEmpty(ed.InstitutionName) || validator.IsEmpty(ed.DegreeLevel) {
			errs.Add("education", "institution_name and degree_level are required")
			break
		}
		if ed.StartYear != nil && ed.EndYear != nil && *ed.EndYear < *ed.StartYear {
			errs.Add("education", "end_year must not be before start_year")
			break
		}
	}
	for _, ex := range experience {
		if validator.IsEmpty(ex.EmployerName) {
			errs.Add("experience", "employer_name is required")
			break
		}
		if ex.StartDate != nil {
			if _, ok := validator.IsValidDate(*ex.StartDate); !ok {
				errs.Add("experience", "start_date must be in YYYY-MM-DD format")
				break
			}
		}
		if ex.EndDate != nil {
			if _, ok := validator.IsValidDate(*ex.EndDate); !ok {
				errs.Add("experience", "end_date must be in YYYY-MM-DD format")
				break
			}
		}
	}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &t
}

// ParseJoiningDate returns the parsed joining date, or nil when absent.
func ParseJoiningDate(s *string) *time.Time {
	return parseOptionalDate(s)
}

// ToEducation maps validated requests to records for employeeID.
func ToEducation(employeeID string, reqs []EducationRequest) []Education {
	out := make([]Education, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Education{
			EmployeeID:      employeeID,
			InstitutionName: r.InstitutionName,
			DegreeLevel:     r.DegreeLevel,
			StartYear:       r.StartYear,
			EndYear:         r.EndYear,
		})
	}
	return out
}

// ToExperience maps validated requests to records for employeeID.
func ToExperience(employeeID string, reqs []ExperienceRequest) []Experience {
	out := make([]Experience, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Experience{
			EmployeeID:      employeeID,
			EmployerName:    r.EmployerName,
			BusinessType:    r.BusinessType,
			Designation:     r.Designation,
			StartDate:       parseOptionalDate(r.StartDate),
			EndDate:         parseOptionalDate(r.EndDate),
			EmployerAddress: r.EmployerAddress,
		})
	}
	return out
}

// ===== Responses =====

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	UserID                *string `json:"user_id,omitempty"`
	FirstName             string  `json:"first_name"`
	MiddleName            *string `json:"middle_name,omitempty"`
	LastName              string  `json:"last_name"`
	FullName              string  `json:"full_name"`
	Email                 string  `json:"email"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	AlternatePhone        *string `json:"alternate_phone,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	BloodGroup            *string `json:"blood_group,omitempty"`
	MaritalStatus         *string `json:"marital_status,omitempty"`
	PresentAddress        *string `json:"present_address,omitempty"`
	PermanentAddress      *string `json:"permanent_address,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyRelationship *string `json:"emergency_relationship,omitempty"`
	EmergencyPhone        *string `json:"emergency_phone,omitempty"`
	Active                bool    `json:"active"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		UserID:                e.UserID,
		FirstName:             e.FirstName,
		MiddleName:            e.MiddleName,
		LastName:              e.LastName,
		FullName:              e.FullName(),
		Email:                 e.Email,
		PhoneNumber:           e.PhoneNumber,
		AlternatePhone:        e.AlternatePhone,
		DateOfBirth:           formatOptionalDate(e.DOB),
		Gender:                e.Gender,
		BloodGroup:            e.BloodGroup,
		MaritalStatus:         e.MaritalStatus,
		PresentAddress:        e.PresentAddress,
		PermanentAddress:      e.PermanentAddress,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyRelationship: e.EmergencyRelationship,
		EmergencyPhone:        e.EmergencyPhone,
		Active:                e.Active,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             e.UpdatedAt.Format(time.RFC3339),
	}
}

func NewEmployeeResponses(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

type CompanyDetailResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	CorporateID    string  `json:"corporate_id"`
	CorporateEmail string  `json:"corporate_email"`
	Designation    string  `json:"designation"`
	JoiningDate    *string `json:"joining_date,omitempty"`
}

func NewCompanyDetailResponse(d CompanyDetail) CompanyDetailResponse {
	return CompanyDetailResponse{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		CorporateID:    d.CorporateID,
		CorporateEmail: d.CorporateEmail,
		Designation:    d.Designation,
		JoiningDate:    formatOptionalDate(d.JoiningDate),
	}
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DocumentType string `json:"document_type"`
	DocumentName string `json:"document_name"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	ContentType  string `json:"content_type"`
	FileSize     int64  `json:"file_size"`
	UploadedAt   string `json:"uploaded_at"`
}

func NewDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		ContentType:  d.ContentType,
		FileSize:     d.FileSize,
		UploadedAt:   d.UploadedAt.Format(time.RFC3339),
	}
}

func NewDocumentResponses(list []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewDocumentResponse(d))
	}
	return out
}

type EducationResponse struct {
	ID              string `json:"id"`
	InstitutionName string `json:"institution_name"`
	DegreeLevel     string `json:"degree_level"`
	StartYear       *int   `json:"start_year,omitempty"`
	EndYear         *int   `json:"end_year,omitempty"`
}

type ExperienceResponse struct {
	ID              string  `json:"id"`
	EmployerName    string  `json:"employer_name"`
	BusinessType    *string `json:"business_type,omitempty"`
	Designation     *string `json:"designation,omitempty"`
	StartDate       *string `json:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
	EmployerAddress *string `json:"employer_address,omitempty"`
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}
