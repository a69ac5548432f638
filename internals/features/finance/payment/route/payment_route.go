// file: internals/features/finance/payment/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/finance/payment/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// PaymentAdminRoutes: pencatatan manual + monitoring pembayaran.
// Base: /api/a/:institute_id
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	g := admin.Group("/payments", featureMw.RequireModule(modules.ModPayments), featureMw.IsInstituteAdmin())
	g.Post("/manual", ctl.CreateManual)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

// PaymentUserRoutes: checkout online wali.
// Base: /api/u/:institute_id
func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	g := user.Group("/payments", featureMw.RequireModule(modules.ModPayments))
	g.Post("/checkout", ctl.Checkout)
}

// PaymentPublicRoutes: webhook Midtrans (tanpa JWT, divalidasi signature).
// Base: /api/public
func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	public.Post("/payments/notification", ctl.HandleNotification)
}
