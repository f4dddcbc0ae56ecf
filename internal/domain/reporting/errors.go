package reporting

import "errors"

var (
	ErrAssignmentNotFound = errors.New("reporting assignment not found")
	ErrSelfAssignment     = errors.New("an employee cannot report to themselves")
)
