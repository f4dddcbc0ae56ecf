package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrInvalidTransition = errors.New("only PENDING timesheets can be changed")
	ErrReviewerNotFound  = errors.New("reviewer not found")
)
