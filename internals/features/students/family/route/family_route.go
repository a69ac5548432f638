// file: internals/features/students/family/route/family_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/students/family/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// FamilyAdminRoutes: CRUD keluarga.
// Base: /api/a/:institute_id
func FamilyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewFamilyController(db)

	adminOnly := featureMw.IsInstituteAdmin()
	g := admin.Group("/families", featureMw.RequireModule(modules.ModFamilies))
	g.Post("/", adminOnly, ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.SoftDelete)
}
