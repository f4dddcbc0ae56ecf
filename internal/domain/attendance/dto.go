package attendance

import (
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

// Calendar maps ISO dates (YYYY-MM-DD) to the names of employees on leave.
type Calendar map[string][]string

// MaxRangeDays caps the calendar window a single request may ask for.
const MaxRangeDays = 366

type CalendarRequest struct {
	Start string
	End   string
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.Start)
	if !startOK {
		errs.Add("start", "start must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.End)
	if !endOK {
		errs.Add("end", "end must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Sub(start) > MaxRangeDays*24*time.Hour {
		errs.Add("end", "range must not exceed 366 days")
	}

	return errs.Err()
}

// Range returns the parsed dates. Call after Validate.
func (r *CalendarRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.Start)
	end, _ := validator.IsValidDate(r.End)
	return start, end
}
