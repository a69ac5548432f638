// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==========================
   Locals keys (diisi middleware AuthJWT / UseInstituteScope)
========================== */

const (
	LocUserID            = "user_id"
	LocUserRole          = "user_role"
	LocIsOwner           = "is_owner"
	LocInstituteRoles    = "institute_roles"
	LocActiveInstituteID = "active_institute_id"
	LocActiveRole        = "active_role"
)

// InstituteRolesEntry: peran user pada satu institute (dari claim token)
type InstituteRolesEntry struct {
	InstituteID uuid.UUID `json:"institute_id"`
	Roles       []string  `json:"roles"`
}

// RolesClaim: gabungan role global + per-institute
type RolesClaim struct {
	RolesGlobal    []string              `json:"roles_global"`
	InstituteRoles []InstituteRolesEntry `json:"institute_roles"`
}

/* ==========================
   Getters
========================== */

// GetUserIDFromToken membaca user_id (UUID) dari locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ada di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

// GetInstituteIDFromToken membaca scope institute aktif (diisi UseInstituteScope).
func GetInstituteIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals(LocActiveInstituteID).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Scope institute belum ditentukan")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "institute_id tidak valid")
	}
	return id, nil
}

// GetActiveRole membaca role aktif pada scope institute.
func GetActiveRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocActiveRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

// IsOwner: role global owner (bypass scope)
func IsOwner(c *fiber.Ctx) bool {
	if b, ok := c.Locals(LocIsOwner).(bool); ok {
		return b
	}
	return false
}

// GetRolesClaim membaca struktur roles_claim yang dihydrate AuthJWT.
func GetRolesClaim(c *fiber.Ctx) (RolesClaim, bool) {
	rc, ok := c.Locals(LocInstituteRoles).(RolesClaim)
	return rc, ok
}

// RolesAt: daftar role user pada institute tertentu
func (rc RolesClaim) RolesAt(instituteID uuid.UUID) []string {
	for _, entry := range rc.InstituteRoles {
		if entry.InstituteID == instituteID {
			return entry.Roles
		}
	}
	return nil
}

// HasRoleAt: apakah user punya role tsb pada institute tsb
func (rc RolesClaim) HasRoleAt(instituteID uuid.UUID, role string) bool {
	for _, r := range rc.RolesAt(instituteID) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
