package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrBalanceAlreadyExists = errors.New("leave balance already exists for this employee")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrInvalidTransition    = errors.New("only PENDING leaves can be approved or rejected")
	ErrApproverNotFound     = errors.New("approver not found")
)
