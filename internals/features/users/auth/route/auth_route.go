// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	"institutku_backend/internals/features/users/auth/controller"
	"institutku_backend/internals/features/users/auth/service"
	rateLimiter "institutku_backend/internals/middlewares"
	authMw "institutku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint auth global.
// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔒 Protected
	protected := baseAuth.Group("", authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    service.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	}))
	protected.Post("/logout", authController.Logout)
	protected.Post("/change-password", authController.ChangePassword)
	protected.Get("/me", authController.Me)
}
