package leave

import (
	"fmt"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

// MaxLeaveDays caps the calendar length of a single leave request.
const MaxLeaveDays = 366

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK {
		if end.Before(start) {
			errs.Add("end_date", "end_date must not be before start_date")
		} else if CalendarDays(start, end) > MaxLeaveDays {
			errs.Add("end_date", fmt.Sprintf("leave must not span more than %d days", MaxLeaveDays))
		}
	}

	if _, ok := ParseLeaveType(r.LeaveType); !ok {
		errs.Add("leave_type", "leave_type must be one of CASUAL, SICK, EARNED")
	}
	if len(r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// Range returns the parsed dates. Call after Validate.
func (r *CreateLeaveRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	LeaveType       string  `json:"leave_type"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	DaysRequested   int     `json:"days_requested"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApproverName    *string `json:"approver_name,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		StartDate:       l.StartDate.Format(validator.DateLayout),
		EndDate:         l.EndDate.Format(validator.DateLayout),
		LeaveType:       string(l.LeaveType),
		Reason:          l.Reason,
		Status:          string(l.Status),
		DaysRequested:   l.DaysRequested,
		RejectionReason: l.RejectionReason,
		SubmittedAt:     l.SubmittedAt.Format(time.RFC3339),
		ApprovedBy:      l.ApprovedBy,
		ApproverName:    l.ApproverName,
	}
	if l.ReviewedAt != nil {
		reviewedAt := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

func NewLeaveResponses(list []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewLeaveResponse(l))
	}
	return out
}

type BalanceResponse struct {
	EmployeeID      string `json:"employee_id"`
	CasualTotal     int    `json:"casual_leaves_total"`
	CasualUsed      int    `json:"casual_leaves_used"`
	CasualRemaining int    `json:"casual_leaves_remaining"`
	SickTotal       int    `json:"sick_leaves_total"`
	SickUsed        int    `json:"sick_leaves_used"`
	SickRemaining   int    `json:"sick_leaves_remaining"`
	EarnedTotal     int    `json:"earned_leaves_total"`
	EarnedUsed      int    `json:"earned_leaves_used"`
	EarnedRemaining int    `json:"earned_leaves_remaining"`
	UpdatedAt       string `json:"updated_at"`
}

func NewBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:      b.EmployeeID,
		CasualTotal:     b.CasualTotal,
		CasualUsed:      b.CasualUsed,
		CasualRemaining: b.Remaining(LeaveTypeCasual),
		SickTotal:       b.SickTotal,
		SickUsed:        b.SickUsed,
		SickRemaining:   b.Remaining(LeaveTypeSick),
		EarnedTotal:     b.EarnedTotal,
		EarnedUsed:      b.EarnedUsed,
		EarnedRemaining: b.Remaining(LeaveTypeEarned),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}
