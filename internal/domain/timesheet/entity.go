package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

type Timesheet struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	TotalHours      decimal.Decimal
	Project         *string
	Task            *string
	Notes           *string
	Category        *string
	Billable        bool
	Status          Status
	ManagerComments *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time

	// DTO / Join
	EmployeeName string
}

// HoursBetween returns end minus start in hours, rounded to two decimals and
// floored at zero. Both arguments are HH:MM clock times.
func HoursBetween(start, end string) decimal.Decimal {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return decimal.Zero
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return decimal.Zero
	}
	minutes := decimal.NewFromFloat(e.Sub(s).Minutes())
	hours := minutes.Div(decimal.NewFromInt(60)).Round(2)
	if hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}

// Filter narrows timesheet listings. Zero values mean no constraint.
type Filter struct {
	EmployeeID  *string
	EmployeeIDs []string
	From        *time.Time
	To          *time.Time
	Status      *Status
}
