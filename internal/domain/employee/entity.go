package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID                    string
	UserID                *string
	FirstName             string
	MiddleName            *string
	LastName              string
	Email                 string
	PhoneNumber           *string
	AlternatePhone        *string
	DOB                   *time.Time
	Gender                *string
	BloodGroup            *string
	MaritalStatus         *string
	PresentAddress        *string
	PermanentAddress      *string
	EmergencyContactName  *string
	EmergencyRelationship *string
	EmergencyPhone        *string
	// Deprecated: mirror of the reporting edge, kept for older readers.
	// Written only by the reporting service.
	ReportingManagerID *string
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName is the display name used across listings and calendars.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// PlaceholderCorporateID marks a company detail whose corporate ID has not
// been issued yet. It is exempt from uniqueness.
const PlaceholderCorporateID = "PENDING"

const DefaultDesignation = "Employee"

type CompanyDetail struct {
	ID             string
	EmployeeID     string
	CorporateID    string
	CorporateEmail string
	Designation    string
	JoiningDate    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Education struct {
	ID              string
	EmployeeID      string
	InstitutionName string
	DegreeLevel     string
	StartYear       *int
	EndYear         *int
}

type Experience struct {
	ID              string
	EmployeeID      string
	EmployerName    string
	BusinessType    *string
	Designation     *string
	StartDate       *time.Time
	EndDate         *time.Time
	EmployerAddress *string
}

type Document struct {
	ID           string
	EmployeeID   string
	DocumentType string
	DocumentName string
	FileName     string
	FileURL      string
	ContentType  string
	FileSize     int64
	// StoragePath is the FileStorage key of an uploaded file. Empty for
	// documents registered by URL only.
	StoragePath string
	UploadedAt  time.Time
}

var DocumentTypes = []string{"EDU_10TH", "EDU_12TH", "GRADUATION", "TECHNICAL", "EMPLOYMENT", "IDENTITY", "OTHER"}
