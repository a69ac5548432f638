// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/users/user/controller"
)

// UserOwnerRoutes: administrasi akun lintas tenant (owner saja).
// Base: /api/o
func UserOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	owner.Get("/users", ctl.List)
	owner.Get("/users/:id", ctl.GetByID)
	owner.Patch("/users/:id/activate", ctl.SetActive(true))
	owner.Patch("/users/:id/deactivate", ctl.SetActive(false))
}
