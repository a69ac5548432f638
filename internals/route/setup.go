// file: internals/route/setup.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	courseRoute "institutku_backend/internals/features/academics/course/route"
	subscriptionRoute "institutku_backend/internals/features/academics/subscription/route"
	billingRoute "institutku_backend/internals/features/finance/billing/route"
	paymentRoute "institutku_backend/internals/features/finance/payment/route"
	serviceRoute "institutku_backend/internals/features/finance/services/route"
	instituteRoute "institutku_backend/internals/features/institutes/institute/route"
	instituteUserRoute "institutku_backend/internals/features/institutes/institute_users/route"
	dashboardRoute "institutku_backend/internals/features/reports/dashboard/route"
	familyRoute "institutku_backend/internals/features/students/family/route"
	studentRoute "institutku_backend/internals/features/students/student/route"
	authRoute "institutku_backend/internals/features/users/auth/route"
	authService "institutku_backend/internals/features/users/auth/service"
	userRoute "institutku_backend/internals/features/users/user/route"
	authMw "institutku_backend/internals/middlewares/auth"
	featureMw "institutku_backend/internals/middlewares/features"
)

// SetupRoutes memasang seluruh route aplikasi.
//
// Grup:
//
//	/api/auth              -> login, register, refresh, logout
//	/api/public            -> tanpa JWT (slug lookup, webhook, health)
//	/api/u/:institute_id   -> portal user (wali/siswa/guru), scope institute
//	/api/a/:institute_id   -> panel admin institute
//	/api/o                 -> owner lintas tenant
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	requireJWT := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	// 🔓 Public
	public := app.Group("/api/public")
	instituteRoute.InstitutePublicRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, db)

	// 👤 Portal user: cukup anggota institute (role apa pun)
	user := app.Group("/api/u/:institute_id",
		requireJWT,
		featureMw.UseInstituteScope(),
	)
	studentRoute.StudentUserRoutes(user, db)
	billingRoute.BillingUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)

	// 🛡️ Panel institute: staf (admin + guru) bisa masuk, tiap feature
	// route mengunci endpoint tulis & finansial ke admin saja.
	admin := app.Group("/api/a/:institute_id",
		requireJWT,
		featureMw.UseInstituteScope(),
		featureMw.RequirePathScopeMatch(),
		featureMw.IsInstituteStaff(),
	)
	instituteRoute.InstituteAdminRoutes(admin, db)
	instituteUserRoute.InstituteUserAdminRoutes(admin, db)
	familyRoute.FamilyAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	serviceRoute.ServiceAdminRoutes(admin, db)
	subscriptionRoute.SubscriptionAdminRoutes(admin, db)
	billingRoute.BillingAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)

	// 👑 Owner lintas tenant
	owner := app.Group("/api/o",
		requireJWT,
		featureMw.IsOwnerGlobal(),
	)
	instituteRoute.InstituteOwnerRoutes(owner, db)
	userRoute.UserOwnerRoutes(owner, db)
	ModuleOwnerRoutes(owner)
}
