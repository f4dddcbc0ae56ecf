package dashboard

type AdminSummaryResponse struct {
	TotalEmployees    int64    `json:"total_employees"`
	ActiveEmployees   int64    `json:"active_employees"`
	Managers          int64    `json:"managers"`
	HR                int64    `json:"hr"`
	PendingLeaves     int64    `json:"pending_leaves"`
	PendingTimesheets int64    `json:"pending_timesheets"`
	OnLeaveToday      []string `json:"on_leave_today"`
}

type TeamSummaryResponse struct {
	ManagerID         string   `json:"manager_id"`
	TeamSize          int      `json:"team_size"`
	PendingLeaves     int64    `json:"pending_leaves"`
	PendingTimesheets int64    `json:"pending_timesheets"`
	OnLeaveToday      []string `json:"on_leave_today"`
}
