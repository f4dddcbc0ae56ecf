package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrCompanyDetailNotFound),
		errors.Is(err, employee.ErrDocumentNotFound),
		errors.Is(err, employee.ErrDocumentFileNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, leave.ErrBalanceNotFound),
		errors.Is(err, leave.ErrLeaveNotFound),
		errors.Is(err, leave.ErrApproverNotFound),
		errors.Is(err, timesheet.ErrTimesheetNotFound),
		errors.Is(err, timesheet.ErrReviewerNotFound),
		errors.Is(err, reporting.ErrAssignmentNotFound):
		NotFound(w, err.Error())

	// Conflicts
	case errors.Is(err, employee.ErrEmailExists),
		errors.Is(err, employee.ErrPhoneExists),
		errors.Is(err, employee.ErrCorporateIDExists),
		errors.Is(err, employee.ErrCorporateEmailExists),
		errors.Is(err, employee.ErrCompanyDetailExists),
		errors.Is(err, employee.ErrEmployeeAlreadyInactive),
		errors.Is(err, leave.ErrBalanceAlreadyExists),
		errors.Is(err, user.ErrUsernameExists):
		Conflict(w, err.Error())

	// State machine
	case errors.Is(err, leave.ErrInvalidTransition),
		errors.Is(err, timesheet.ErrInvalidTransition):
		Conflict(w, err.Error())

	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, reporting.ErrSelfAssignment),
		errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
