// file: internals/features/academics/course/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/academics/course/controller"
	featureMw "institutku_backend/internals/middlewares/features"
	"institutku_backend/internals/modules"
)

// CourseAdminRoutes: CRUD kelas / program.
// Base: /api/a/:institute_id
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	adminOnly := featureMw.IsInstituteAdmin()
	g := admin.Group("/courses", featureMw.RequireModule(modules.ModCourses))
	g.Post("/", adminOnly, ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.SoftDelete)
}
