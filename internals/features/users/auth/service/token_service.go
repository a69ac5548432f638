// file: internals/features/users/auth/service/token_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "institutku_backend/internals/features/users/auth/model"
	authRepo "institutku_backend/internals/features/users/auth/repository"
	helpers "institutku_backend/internals/helpers"
)

/* ==========================
   REFRESH TOKEN (dengan rotasi)
========================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	// terima dari cookie atau body
	refreshRaw := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshRaw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshRaw = strings.TrimSpace(body.RefreshToken)
	}
	if refreshRaw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshRaw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB dan masih aktif
	h := computeRefreshHash(refreshRaw, refreshSecret)
	var exists bool
	if err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens
		  WHERE refresh_token_hash = ? AND refresh_token_expires_at > NOW())`, h).
		Scan(&exists).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	rolesClaim, err := getUserRolesClaim(db, user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil roles")
	}

	// ROTATE: hapus token lama, issue pasangan baru
	if err := deleteRefreshTokenByHash(db, h); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	return issueTokensWithRoles(c, db, user, rolesClaim)
}

func deleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("refresh_token_hash = ?", hash).
		Delete(&authModel.RefreshTokenModel{}).Error
}

/* ==========================
   BLACKLIST
========================== */

// BlacklistToken menyimpan access token yang dicabut sampai masa berlakunya habis.
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}).Error
}

// IsTokenBlacklisted dipakai AuthJWT sebagai BlacklistChecker.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var exists bool
		err := db.Raw(
			`SELECT EXISTS(SELECT 1 FROM token_blacklists
			  WHERE token_blacklist_token = ?
			    AND token_blacklist_expired_at > NOW()
			    AND token_blacklist_deleted_at IS NULL)`, rawToken).
			Scan(&exists).Error
		return exists, err
	}
}
