package user

// Role transitions driven by the reporting graph. All role changes made by
// hierarchy operations go through these functions.
//
//	EMPLOYEE -> REPORTING_MANAGER  (assigned as someone's manager)
//	EMPLOYEE -> HR                 (assigned as someone's HR)
//	REPORTING_MANAGER -> EMPLOYEE  (manager removed)
//
// ADMIN never moves.

// Promote returns the role held after an explicit promotion to target.
// changed is false when the role stays as it is.
func Promote(current, target Role) (next Role, changed bool) {
	if target != RoleReportingManager && target != RoleHR {
		return current, false
	}
	if current == RoleAdmin || current == target {
		return current, false
	}
	return target, true
}

// AutoPromote applies the promotion implied by being assigned as a manager or
// HR. Only plain employees are moved.
func AutoPromote(current, target Role) (next Role, changed bool) {
	if current != RoleEmployee {
		return current, false
	}
	return Promote(current, target)
}

// Demote reverts a graph-derived role back to EMPLOYEE, but only when the
// current role is from.
func Demote(current, from Role) (next Role, changed bool) {
	if from == RoleAdmin || from == RoleEmployee || current != from {
		return current, false
	}
	return RoleEmployee, true
}
