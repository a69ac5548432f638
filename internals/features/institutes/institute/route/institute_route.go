// file: internals/features/institutes/institute/route/institute_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/institutes/institute/controller"
	featureMw "institutku_backend/internals/middlewares/features"
)

// InstituteOwnerRoutes: kelola institute lintas tenant (owner saja).
// Base: /api/o
func InstituteOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctl := controller.NewInstituteController(db)

	owner.Post("/institutes", ctl.Create)
	owner.Get("/institutes", ctl.List)
	owner.Get("/institutes/:id", ctl.GetByID)
	owner.Put("/institutes/:id", ctl.Update)
	owner.Delete("/institutes/:id", ctl.SoftDelete)
}

// InstituteAdminRoutes: profil & feature flag tenant sendiri.
// Base: /api/a/:institute_id
func InstituteAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewInstituteController(db)
	adminOnly := featureMw.IsInstituteAdmin()

	admin.Get("/profile", ctl.GetProfile)
	admin.Put("/profile", adminOnly, ctl.UpdateProfile)
	admin.Get("/features", ctl.GetFeatures)
	admin.Patch("/features", adminOnly, ctl.PatchFeatures)
}

// InstitutePublicRoutes: lookup institute by slug (landing page).
// Base: /api/public
func InstitutePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewInstituteController(db)

	public.Get("/institutes/:slug", ctl.GetBySlug)
}
