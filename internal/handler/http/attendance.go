package http

import (
	"net/http"

	"github.com/oryfolks/hrms-backend-go/internal/domain/attendance"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Calendar(w http.ResponseWriter, r *http.Request)
	CalendarICS(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func calendarRange(w http.ResponseWriter, r *http.Request) (attendance.CalendarRequest, bool) {
	req := attendance.CalendarRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

// Calendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	req, ok := calendarRange(w, r)
	if !ok {
		return
	}
	start, end := req.Range()

	calendar, err := h.attendanceService.GetCalendarAttendance(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendar)
}

// CalendarICS implements AttendanceHandler.
func (h *attendanceHandlerImpl) CalendarICS(w http.ResponseWriter, r *http.Request) {
	req, ok := calendarRange(w, r)
	if !ok {
		return
	}
	start, end := req.Range()

	feed, err := h.attendanceService.LeaveCalendar(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, "text/calendar; charset=utf-8", "leave-calendar.ics", feed)
}
