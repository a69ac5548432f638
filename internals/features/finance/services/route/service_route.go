// file: internals/features/finance/services/route/service_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/finance/services/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// ServiceAdminRoutes: CRUD layanan berbayar (catering, antar jemput, dst).
// Base: /api/a/:institute_id
func ServiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewServiceController(db)

	adminOnly := featureMw.IsInstituteAdmin()
	g := admin.Group("/services", featureMw.RequireModule(modules.ModServices))
	g.Post("/", adminOnly, ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.SoftDelete)
}
