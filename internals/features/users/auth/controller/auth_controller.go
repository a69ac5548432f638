// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/users/auth/service"
	userModel "institutku_backend/internals/features/users/user/model"
	helpers "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

// Me mengembalikan profil user dari token + keanggotaan institute-nya.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonDBError(c, err, "User tidak ditemukan")
	}
	user.Password = ""

	rc, _ := helperAuth.GetRolesClaim(c)

	return helpers.JsonOK(c, "OK", fiber.Map{
		"user":            user,
		"roles_global":    rc.RolesGlobal,
		"institute_roles": rc.InstituteRoles,
		"is_owner":        helperAuth.IsOwner(c),
	})
}
