// file: internals/features/reports/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/reports/dashboard/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// DashboardAdminRoutes: rekap finansial & entitas per tenant.
// Base: /api/a/:institute_id
func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	g := admin.Group("/reports", featureMw.RequireModule(modules.ModReports), featureMw.IsInstituteAdmin())
	g.Get("/dashboard", ctl.Summary)
	g.Get("/outstanding", ctl.Outstanding)
}
