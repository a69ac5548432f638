// file: internals/middlewares/auth/jwt_auth.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helperAuth "institutku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // true jika token sudah dicabut
	AllowCookieFallback bool                                // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi access token dan meng-hydrate locals
// (user_id, user_role, is_owner, institute_roles) untuk guard di bawahnya.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (opsional). Kalau store-nya tidak bisa dicek,
		// request ditolak, bukan diloloskan.
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(raw)
			if err != nil {
				log.Printf("[AUTH] ❌ cek blacklist gagal: %v", err)
				return fiber.NewError(fiber.StatusServiceUnavailable, "Auth store unavailable")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// user_id: id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		default:
			return fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ada di token")
		}

		if role := strClaim(claims, "role"); role != "" {
			c.Locals(helperAuth.LocUserRole, strings.ToLower(role))
		}

		// is_owner (bool atau string)
		switch t := claims["is_owner"].(type) {
		case bool:
			c.Locals(helperAuth.LocIsOwner, t)
		case string:
			s := strings.ToLower(strings.TrimSpace(t))
			c.Locals(helperAuth.LocIsOwner, s == "true" || s == "1" || s == "yes")
		}

		// === Build roles_claim dari klaim roles_global + institute_roles ===
		rc := helperAuth.RolesClaim{
			RolesGlobal:    readStringSlice(claims["roles_global"]),
			InstituteRoles: make([]helperAuth.InstituteRolesEntry, 0),
		}
		if arr, ok := claims["institute_roles"].([]any); ok {
			for _, it := range arr {
				m, ok := it.(map[string]any)
				if !ok {
					continue
				}
				var iid uuid.UUID
				if s, ok := m["institute_id"].(string); ok {
					if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
						iid = id
					}
				}
				if iid == uuid.Nil {
					continue
				}
				rc.InstituteRoles = append(rc.InstituteRoles, helperAuth.InstituteRolesEntry{
					InstituteID: iid,
					Roles:       readStringSlice(m["roles"]),
				})
			}
		}
		c.Locals(helperAuth.LocInstituteRoles, rc)

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
