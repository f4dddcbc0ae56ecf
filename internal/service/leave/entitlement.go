package leave

import (
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
)

const (
	// probationMonths is the tenure before casual and sick leave accrue.
	probationMonths = 6
	casualPerYear   = 10
	sickPerYear     = 6
	// earnedStartMonth is the first tenure month earning one earned day.
	earnedStartMonth = 12
)

type EntitlementCalculator struct {
	now func() time.Time
}

// NewEntitlementCalculator uses now as the clock; nil means time.Now.
func NewEntitlementCalculator(now func() time.Time) *EntitlementCalculator {
	if now == nil {
		now = time.Now
	}
	return &EntitlementCalculator{now: now}
}

// Calculate derives the entitlement for an employee who joined on joiningDate.
func (c *EntitlementCalculator) Calculate(joiningDate time.Time) leave.Entitlement {
	return EntitlementFor(MonthsBetween(joiningDate, c.now()))
}

// EntitlementFor maps whole months of tenure to leave totals.
func EntitlementFor(months int) leave.Entitlement {
	if months < probationMonths {
		return leave.Entitlement{}
	}
	e := leave.Entitlement{Casual: casualPerYear, Sick: sickPerYear}
	if months >= earnedStartMonth {
		e.Earned = months - (earnedStartMonth - 1)
	}
	return e
}

// MonthsBetween counts whole calendar months from start to end. A month
// only completes once the day of month is reached, so Jan 31 to Feb 28 is
// zero months. The result is negative when end is before start.
func MonthsBetween(start, end time.Time) int {
	start, end = leave.DateOf(start), leave.DateOf(end)

	total := (end.Year()*12 + int(end.Month())) - (start.Year()*12 + int(start.Month()))

	// Adjust if day hasn't passed yet
	if total > 0 && end.Day() < start.Day() {
		total--
	} else if total < 0 && end.Day() > start.Day() {
		total++
	}
	return total
}
