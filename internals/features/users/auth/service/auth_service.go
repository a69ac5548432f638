// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	authModel "institutku_backend/internals/features/users/auth/model"
	authRepo "institutku_backend/internals/features/users/auth/repository"
	userModel "institutku_backend/internals/features/users/user/model"
	helpers "institutku_backend/internals/helpers"
	helpersAuth "institutku_backend/internals/helpers/auth"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func rolesClaimHas(rc helpersAuth.RolesClaim, role string) bool {
	for _, r := range rc.RolesGlobal {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	for _, ir := range rc.InstituteRoles {
		for _, r := range ir.Roles {
			if strings.EqualFold(r, role) {
				return true
			}
		}
	}
	return false
}

/* ==========================
   ROLES CLAIM
========================== */

// getUserRolesClaim membangun claim roles: role global dari kolom users.role,
// roles per-institute dari tabel institute_users.
func getUserRolesClaim(db *gorm.DB, user *userModel.UserModel) (helpersAuth.RolesClaim, error) {
	out := helpersAuth.RolesClaim{
		RolesGlobal:    []string{strings.ToLower(user.Role)},
		InstituteRoles: make([]helpersAuth.InstituteRolesEntry, 0),
	}

	type row struct {
		InstituteID uuid.UUID `gorm:"column:institute_user_institute_id"`
		Role        string    `gorm:"column:institute_user_role"`
	}
	var rows []row
	if err := db.Table("institute_users").
		Select("institute_user_institute_id, institute_user_role").
		Where("institute_user_user_id = ? AND institute_user_is_active = TRUE", user.ID).
		Order("institute_user_institute_id").
		Scan(&rows).Error; err != nil {
		return out, err
	}

	byInstitute := map[uuid.UUID][]string{}
	order := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if _, seen := byInstitute[r.InstituteID]; !seen {
			order = append(order, r.InstituteID)
		}
		byInstitute[r.InstituteID] = append(byInstitute[r.InstituteID], strings.ToLower(r.Role))
	}
	for _, id := range order {
		out.InstituteRoles = append(out.InstituteRoles, helpersAuth.InstituteRolesEntry{
			InstituteID: id,
			Roles:       byInstitute[id],
		})
	}
	return out, nil
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = string(hashed)
	input.Role = "user" // registrasi publik selalu role user

	if err := authRepo.CreateUser(db, &input); err != nil {
		return helpers.JsonDBError(c, err, "Gagal membuat user")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        input.ID,
		"user_name": input.UserName,
		"email":     input.Email,
	})
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)
	if input.Identifier == "" || input.Password == "" {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Identifier dan password wajib diisi")
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	rolesClaim, err := getUserRolesClaim(db, user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roles user")
	}

	return issueTokensWithRoles(c, db, user, rolesClaim)
}

/* ==========================
   JWT claims builders
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user *userModel.UserModel, rc helpersAuth.RolesClaim, isOwner bool, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":             "access",
		"sub":             user.ID.String(),
		"id":              user.ID.String(),
		"user_name":       user.UserName,
		"role":            strings.ToLower(user.Role),
		"roles_global":    rc.RolesGlobal,
		"institute_roles": rc.InstituteRoles,
		"is_owner":        isOwner,
		"iat":             now.Unix(),
		"exp":             now.Add(accessTTLDefault).Unix(),
	}
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func issueTokensWithRoles(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel, rolesClaim helpersAuth.RolesClaim) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	isOwner := rolesClaimHas(rolesClaim, "owner")

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, rolesClaim, isOwner, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	if err := db.Create(&authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.ID,
		RefreshTokenHash:      computeRefreshHash(refreshToken, refreshSecret),
		RefreshTokenExpiresAt: now.Add(refreshTTLDefault),
	}).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setRefreshCookie(c, refreshToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":              user.ID,
			"user_name":       user.UserName,
			"email":           user.Email,
			"roles_global":    rolesClaim.RolesGlobal,
			"institute_roles": rolesClaim.InstituteRoles,
			"is_owner":        isOwner,
		},
	})
}

func setRefreshCookie(c *fiber.Ctx, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw != "" {
		if err := BlacklistToken(db, raw, nowUTC().Add(accessTTLDefault)); err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal blacklist token")
		}
	}

	// revoke refresh token dari cookie (kalau ada)
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = deleteRefreshTokenByHash(db, computeRefreshHash(refreshCookie, refreshSecret))
		}
	}
	c.ClearCookie("refresh_token")

	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Password baru minimal 8 karakter")
	}

	userID, err := helpersAuth.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, string(newHash)); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password berhasil diganti", nil)
}
