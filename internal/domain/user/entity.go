package user

import "time"

type Role string

const (
	RoleAdmin            Role = "ADMIN"             // Full access, root of the reporting graph
	RoleHR               Role = "HR"                // Assigned as HR contact for employees
	RoleReportingManager Role = "REPORTING_MANAGER" // Has a team reporting to them
	RoleEmployee         Role = "EMPLOYEE"          // Regular employee
)

// ParseRole returns the Role named by s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleHR, RoleReportingManager, RoleEmployee:
		return r, true
	}
	return "", false
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can review leave and timesheet requests
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR || u.Role == RoleReportingManager
}
