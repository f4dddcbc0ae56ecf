package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
)

const calendarProductID = "-//oryfolks//hrms leave calendar//EN"

// LeaveCalendar renders leaves as all-day VEVENTs. DTEND is exclusive, so it
// falls on the day after the leave ends.
func LeaveCalendar(leaves []leave.Leave, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName("Approved leave")

	for _, l := range leaves {
		event := cal.AddEvent(l.ID + "@hrms")
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(l.StartDate)
		event.SetAllDayEndAt(l.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s (%s leave)", l.EmployeeName, l.LeaveType))
		if l.Reason != "" {
			event.SetDescription(l.Reason)
		}
	}

	return cal.Serialize()
}
