package user

import "strings"

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionEmployeeDelete  Permission = "employee.delete"

	// Leave Management
	PermissionLeaveViewOwn       Permission = "leave.view_own"
	PermissionLeaveCreate        Permission = "leave.create"
	PermissionLeaveViewAll       Permission = "leave.view_all"
	PermissionLeaveApprove       Permission = "leave.approve"
	PermissionLeaveManageBalance Permission = "leave.manage_balance"

	// Reporting hierarchy
	PermissionReportingView   Permission = "reporting.view"
	PermissionReportingManage Permission = "reporting.manage"

	// Attendance
	PermissionAttendanceView Permission = "attendance.view"

	// Timesheets
	PermissionTimesheetViewOwn Permission = "timesheet.view_own"
	PermissionTimesheetCreate  Permission = "timesheet.create"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"
	PermissionTimesheetApprove Permission = "timesheet.approve"
	PermissionTimesheetExport  Permission = "timesheet.export"

	// Dashboards
	PermissionDashboardTeam  Permission = "dashboard.team"
	PermissionDashboardAdmin Permission = "dashboard.admin"
)

// Resource returns the part before the dot, e.g. "leave" for "leave.approve".
func (p Permission) Resource() string {
	resource, _, _ := strings.Cut(string(p), ".")
	return resource
}

// Action returns the part after the dot, e.g. "approve" for "leave.approve".
func (p Permission) Action() string {
	_, action, _ := strings.Cut(string(p), ".")
	return action
}

// RoleInherits lists, per role, the roles whose permissions it also holds.
var RoleInherits = map[Role][]Role{
	RoleHR:               {RoleEmployee},
	RoleReportingManager: {RoleEmployee},
}

// RolePermissions maps roles to the permissions granted directly. ADMIN is
// granted everything by the enforcer.
var RolePermissions = map[Role][]Permission{
	RoleHR: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveManageBalance,
		PermissionReportingView,
		PermissionReportingManage,
		PermissionTimesheetViewAll,
		PermissionTimesheetApprove,
		PermissionTimesheetExport,
		PermissionDashboardAdmin,
	},
	RoleReportingManager: {
		PermissionEmployeeViewAll,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionReportingView,
		PermissionTimesheetViewAll,
		PermissionTimesheetApprove,
		PermissionDashboardTeam,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceView,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
	},
}
