// file: internals/features/academics/subscription/route/subscription_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/academics/subscription/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// SubscriptionAdminRoutes: langganan siswa ke course/service.
// Base: /api/a/:institute_id
func SubscriptionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubscriptionController(db)

	adminOnly := featureMw.IsInstituteAdmin()
	g := admin.Group("/subscriptions", featureMw.RequireModule(modules.ModSubscriptions))
	g.Post("/", adminOnly, ctl.Create)
	g.Get("/", ctl.List)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Post("/:id/end", adminOnly, ctl.End)
}
