// file: internals/features/institutes/institute_users/route/institute_user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/institutes/institute_users/controller"
	featureMw "institutku_backend/internals/middlewares/features"
)

// InstituteUserAdminRoutes: kelola keanggotaan & role user pada tenant.
// Base: /api/a/:institute_id
func InstituteUserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewInstituteUserController(db)

	g := admin.Group("/members", featureMw.IsInstituteAdmin())
	g.Post("/", ctl.Grant)
	g.Get("/", ctl.List)
	g.Delete("/:id", ctl.Revoke)
}
