// file: internals/middlewares/features/guards.go
package middleware

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"institutku_backend/internals/constants"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
	"institutku_backend/internals/modules"
)

func trimLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}

/* ==========================
   Ekstraksi institute_id & role dari request
========================== */

// extractInstituteIDStrict hanya balikin kalau benar-benar UUID.
func extractInstituteIDStrict(c *fiber.Ctx) string {
	// 1) param (/:institute_id)
	if v := strings.TrimSpace(c.Params("institute_id")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 2) query (?institute_id=)
	if v := strings.TrimSpace(c.Query("institute_id")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 3) header (X-Institute-ID)
	if v := strings.TrimSpace(c.Get("X-Institute-ID")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 4) parse path: /api/(a|u)/:institute_id/...
	parts := strings.Split(strings.Trim(c.Path(), "/"), "/")
	if len(parts) >= 3 && strings.EqualFold(parts[0], "api") &&
		(strings.EqualFold(parts[1], "a") || strings.EqualFold(parts[1], "u")) {
		if _, err := uuid.Parse(parts[2]); err == nil {
			return parts[2]
		}
	}
	return ""
}

func extractRole(c *fiber.Ctx) string {
	if v := trimLower(c.Query("role")); v != "" {
		return v
	}
	if v := trimLower(c.Get("X-Active-Role")); v != "" {
		return v
	}
	return ""
}

func bestRoleFor(roles []string) string {
	cands := make([]string, 0, len(roles))
	for _, r := range roles {
		if r = trimLower(r); r != "" {
			cands = append(cands, r)
		}
	}
	if len(cands) == 0 {
		return ""
	}
	sort.Slice(cands, func(i, j int) bool {
		return constants.RolePriority[cands[i]] > constants.RolePriority[cands[j]]
	})
	return cands[0]
}

/* ==========================
   STRICT SCOPE — by PATH + token fallback
========================== */

// UseInstituteScope:
// - Ambil institute_id dari PATH/param (UUID); kosong → tolak.
// - Non-owner: institute harus ada di token (institute_roles).
// - Role: jika dikirim user, harus ada di institute tsb; kalau tidak, pilih best role.
// - Set locals: active_institute_id, active_role.
func UseInstituteScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isOwner := helperAuth.IsOwner(c)

		reqInstitute := extractInstituteIDStrict(c)
		if reqInstitute == "" {
			return fiber.NewError(fiber.StatusBadRequest, "institute_id wajib di path atau parameter")
		}
		instituteID, err := uuid.Parse(reqInstitute)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "institute_id tidak valid")
		}

		reqRole := extractRole(c)

		// OWNER bypass
		if isOwner {
			if reqRole == "" {
				reqRole = constants.RoleOwner
			}
			c.Locals(helperAuth.LocActiveInstituteID, reqInstitute)
			c.Locals(helperAuth.LocActiveRole, reqRole)
			return c.Next()
		}

		rc, ok := helperAuth.GetRolesClaim(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Roles claim tidak ditemukan")
		}
		rolesAt := rc.RolesAt(instituteID)
		if len(rolesAt) == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Bukan anggota pada institute yang diminta")
		}

		activeRole := reqRole
		if activeRole != "" {
			if !rc.HasRoleAt(instituteID, activeRole) {
				return fiber.NewError(fiber.StatusForbidden, "Role tidak tersedia pada institute tersebut")
			}
		} else {
			activeRole = bestRoleFor(rolesAt)
			if activeRole == "" {
				return fiber.NewError(fiber.StatusForbidden, "Tidak memiliki peran pada institute tersebut")
			}
		}

		c.Locals(helperAuth.LocActiveInstituteID, reqInstitute)
		c.Locals(helperAuth.LocActiveRole, activeRole)
		return c.Next()
	}
}

// RequirePathScopeMatch: path /api/a/:institute_id harus cocok dengan scope aktif.
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(strings.ToLower(c.Path()), "/api/a/") {
			return c.Next()
		}
		pathID := extractInstituteIDStrict(c)
		if pathID == "" {
			return c.Next()
		}
		active := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveInstituteID)))
		if active == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope institute belum ditentukan")
		}
		if !strings.EqualFold(pathID, active) {
			return fiber.NewError(fiber.StatusForbidden, "Scope institute tidak cocok dengan path")
		}
		return c.Next()
	}
}

/* ==========================
   STRICT ROLE CHECK
========================== */

// IsInstituteAdmin: hanya owner/admin (teacher TIDAK otomatis lolos).
func IsInstituteAdmin() fiber.Handler {
	return requireActiveRole(constants.RoleAdmin)
}

// IsInstituteStaff: admin/teacher (plus owner).
func IsInstituteStaff() fiber.Handler {
	return requireActiveRole(constants.RoleAdmin, constants.RoleTeacher)
}

func requireActiveRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		iid := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveInstituteID)))
		role := trimLower(asString(c.Locals(helperAuth.LocActiveRole)))
		if iid == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope institute/role belum ditentukan")
		}
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Role tidak berhak mengakses endpoint ini")
	}
}

// IsOwnerGlobal: akses khusus owner (role global, bukan per-institute).
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		rc, ok := helperAuth.GetRolesClaim(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Roles claim tidak ditemukan")
		}
		for _, r := range rc.RolesGlobal {
			if strings.EqualFold(r, constants.RoleOwner) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses khusus owner")
	}
}

/* ==========================
   Module gate
========================== */

// RequireModule menolak request kalau modul dimatikan lewat feature flag.
func RequireModule(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !modules.Default().IsEnabled(name) {
			return helper.JsonErrorWithCode(c, fiber.StatusForbidden, "MODULE_DISABLED",
				fmt.Sprintf("Modul %s sedang dinonaktifkan", name))
		}
		return c.Next()
	}
}
