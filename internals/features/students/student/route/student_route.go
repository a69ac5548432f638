// file: internals/features/students/student/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/students/student/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// StudentAdminRoutes: CRUD siswa (admin & guru bisa baca, tulis admin).
// Base: /api/a/:institute_id
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	adminOnly := featureMw.IsInstituteAdmin()
	g := admin.Group("/students", featureMw.RequireModule(modules.ModStudents))
	g.Post("/", adminOnly, ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.SoftDelete)
}

// StudentUserRoutes: portal wali & siswa.
// Base: /api/u/:institute_id
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	g := user.Group("", featureMw.RequireModule(modules.ModStudents))
	g.Get("/my-children", ctl.MyChildren)
	g.Get("/my-profile", ctl.MyProfile)
}
