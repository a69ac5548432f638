package constants

import "fmt"

// Role global / per-institute
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleStudent = "student"
	RoleUser    = "user"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleParent,
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	StaffRoles = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	// Role yang sah untuk institute_users (grant per tenant)
	TenantRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleParent,
		RoleStudent,
	}
)

// RolePriority dipakai untuk auto-pick role terbaik pada satu institute
var RolePriority = map[string]int{
	RoleOwner:   100,
	RoleAdmin:   90,
	RoleTeacher: 70,
	RoleParent:  50,
	RoleStudent: 40,
	RoleUser:    10,
}
