package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmailExists             = errors.New("email already exists")
	ErrPhoneExists             = errors.New("phone number already exists")
	ErrCorporateIDExists       = errors.New("corporate ID already exists")
	ErrCorporateEmailExists    = errors.New("corporate email already exists")
	ErrCompanyDetailNotFound   = errors.New("company details not found")
	ErrCompanyDetailExists     = errors.New("company details already exist for this employee")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentFileNotFound    = errors.New("document has no stored file")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrDeletionFailed          = errors.New("failed to delete employee")
)
