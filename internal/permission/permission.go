// Package permission defines the named permissions each operation is
// gated on, and the fixed role-to-permission table. Role strings are
// compared here and nowhere else.
package permission

// Roles, fixed per user at creation or admin-edit.
const (
	RoleAdmin   = "admin"
	RoleWorker  = "worker"
	RoleAuditor = "auditor"
)

// Permission names a single operation class on one entity.
type Permission string

const (
	UserManage          Permission = "user:manage"
	WorkerDirectoryRead Permission = "user:read-workers"

	ShiftManage  Permission = "shift:manage"
	ShiftReadAll Permission = "shift:read-all"
	ShiftReadOwn Permission = "shift:read-own"

	AttendanceReadAll   Permission = "attendance:read-all"
	AttendanceReadOwn   Permission = "attendance:read-own"
	AttendanceCheckSelf Permission = "attendance:check-self"
	AttendanceManage    Permission = "attendance:manage"

	AlertCreate  Permission = "alert:create"
	AlertReadAll Permission = "alert:read-all"
	AlertReadOwn Permission = "alert:read-own"
	AlertResolve Permission = "alert:resolve"

	ReportCreate Permission = "report:create"
	ReportRead   Permission = "report:read"

	ExportAttendance  Permission = "export:attendance"
	ExportOwnCalendar Permission = "export:own-calendar"
)

// rolePermissions is the fixed allow-list per role.
var rolePermissions = map[string]map[Permission]bool{
	RoleAdmin: {
		UserManage:          true,
		WorkerDirectoryRead: true,
		ShiftManage:         true,
		ShiftReadAll:        true,
		AttendanceReadAll:   true,
		AttendanceManage:    true,
		AlertReadAll:        true,
		AlertResolve:        true,
		ReportRead:          true,
		ExportAttendance:    true,
	},
	RoleWorker: {
		WorkerDirectoryRead: true,
		ShiftReadAll:        true,
		ShiftReadOwn:        true,
		AttendanceReadOwn:   true,
		AttendanceCheckSelf: true,
		AlertCreate:         true,
		AlertReadOwn:        true,
		ExportOwnCalendar:   true,
	},
	RoleAuditor: {
		WorkerDirectoryRead: true,
		ShiftReadAll:        true,
		AttendanceReadAll:   true,
		AlertReadAll:        true,
		AlertResolve:        true,
		ReportCreate:        true,
		ReportRead:          true,
		ExportAttendance:    true,
	},
}

// RoleHas reports whether the role is granted the permission.
// Unknown roles hold no permissions.
func RoleHas(role string, p Permission) bool {
	return rolePermissions[role][p]
}

// ValidRole reports whether the role string is one of the three roles.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// SelfRegisterAllowed reports whether the role may self-register.
// Admin accounts are created by other admins only.
func SelfRegisterAllowed(role string) bool {
	return role == RoleWorker || role == RoleAuditor
}
