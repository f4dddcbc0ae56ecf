package leave

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "CASUAL"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeEarned LeaveType = "EARNED"
)

var LeaveTypes = []LeaveType{LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned}

// ParseLeaveType accepts any letter case.
func ParseLeaveType(s string) (LeaveType, bool) {
	switch t := LeaveType(strings.ToUpper(strings.TrimSpace(s))); t {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned:
		return t, true
	}
	return "", false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

type Leave struct {
	ID              string
	EmployeeID      string
	StartDate       time.Time
	EndDate         time.Time
	LeaveType       LeaveType
	Reason          string
	Status          LeaveStatus
	DaysRequested   int
	RejectionReason *string
	SubmittedAt     time.Time
	ApprovedBy      *string
	ReviewedAt      *time.Time

	// DTO / Join
	EmployeeName string
	ApproverName *string
}

// Covers reports whether day falls inside the leave interval, inclusive.
func (l Leave) Covers(day time.Time) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}

// Overlaps reports whether the leave intersects [start, end].
func (l Leave) Overlaps(start, end time.Time) bool {
	return !l.EndDate.Before(start) && !l.StartDate.After(end)
}

type LeaveBalance struct {
	ID          string
	EmployeeID  string
	CasualTotal int
	CasualUsed  int
	SickTotal   int
	SickUsed    int
	EarnedTotal int
	EarnedUsed  int
	UpdatedAt   time.Time
}

// Entitlement is the set of totals derived from tenure.
type Entitlement struct {
	Casual int
	Sick   int
	Earned int
}

// Entitlement returns the totals currently stored on the balance.
func (b LeaveBalance) Entitlement() Entitlement {
	return Entitlement{Casual: b.CasualTotal, Sick: b.SickTotal, Earned: b.EarnedTotal}
}

// SetEntitlement overwrites the three totals. Used counters are untouched.
func (b *LeaveBalance) SetEntitlement(e Entitlement) {
	b.CasualTotal = e.Casual
	b.SickTotal = e.Sick
	b.EarnedTotal = e.Earned
}

func (b LeaveBalance) Total(t LeaveType) int {
	switch t {
	case LeaveTypeCasual:
		return b.CasualTotal
	case LeaveTypeSick:
		return b.SickTotal
	case LeaveTypeEarned:
		return b.EarnedTotal
	}
	return 0
}

func (b LeaveBalance) Used(t LeaveType) int {
	switch t {
	case LeaveTypeCasual:
		return b.CasualUsed
	case LeaveTypeSick:
		return b.SickUsed
	case LeaveTypeEarned:
		return b.EarnedUsed
	}
	return 0
}

// Remaining is total minus used. It can go negative when an entitlement is
// recomputed below what was already consumed.
func (b LeaveBalance) Remaining(t LeaveType) int {
	return b.Total(t) - b.Used(t)
}

// RemainingTotal sums the remaining days over every leave type.
func (b LeaveBalance) RemainingTotal() int {
	sum := 0
	for _, t := range LeaveTypes {
		sum += b.Remaining(t)
	}
	return sum
}

// ApplyUsage adds delta to the used counter of t, flooring at zero.
func (b *LeaveBalance) ApplyUsage(t LeaveType, delta int) {
	var used *int
	switch t {
	case LeaveTypeCasual:
		used = &b.CasualUsed
	case LeaveTypeSick:
		used = &b.SickUsed
	case LeaveTypeEarned:
		used = &b.EarnedUsed
	default:
		return
	}
	*used = max(0, *used+delta)
}

// IsWorkingDay reports whether day is Monday through Friday. There is no
// holiday calendar.
func IsWorkingDay(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDays lists the working days in [start, end], inclusive, as dates.
func WorkingDays(start, end time.Time) []time.Time {
	start, end = DateOf(start), DateOf(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// CountWorkingDays counts Monday-Friday dates in [start, end], inclusive,
// in constant time.
func CountWorkingDays(start, end time.Time) int {
	total := CalendarDays(start, end)
	if total <= 0 {
		return 0
	}

	count := total / 7 * 5
	wd := DateOf(start).Weekday()
	for i := range total % 7 {
		if d := (wd + time.Weekday(i)) % 7; d != time.Saturday && d != time.Sunday {
			count++
		}
	}
	return count
}

// CalendarDays counts the dates in [start, end], inclusive. It is zero when
// end is before start.
func CalendarDays(start, end time.Time) int {
	days := (DateOf(end).Unix()-DateOf(start).Unix())/secondsPerDay + 1
	return int(max(days, 0))
}

const secondsPerDay = 24 * 60 * 60

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
