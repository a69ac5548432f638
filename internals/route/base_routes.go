// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "institutku_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes: health & root, dipakai load balancer dan deploy monitor.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"status":         "healthy",
			"database":       dbStatus,
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "Institutku Backend", fiber.Map{
			"docs": "/api",
		})
	})
}
