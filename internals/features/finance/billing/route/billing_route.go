// file: internals/features/finance/billing/route/billing_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/finance/billing/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// BillingAdminRoutes: batch tagihan bulanan + alokasinya.
// Base: /api/a/:institute_id
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	// finansial: admin saja, guru tidak
	g := admin.Group("/billings", featureMw.RequireModule(modules.ModBilling), featureMw.IsInstituteAdmin())
	g.Post("/", ctl.Generate)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/allocations", ctl.ListAllocations)
	g.Delete("/:id", ctl.SoftDelete)
}

// BillingUserRoutes: tagihan anak sendiri (portal wali / siswa).
// Base: /api/u/:institute_id
func BillingUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	g := user.Group("", featureMw.RequireModule(modules.ModBilling))
	g.Get("/my-allocations", ctl.MyAllocations)
}
