// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "institutku_backend/internals/features/users/user/model"
	helper "institutku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/o/users
// Daftar user lintas tenant, cari ?q= (nama / email), filter ?role= & ?active=.
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", strings.ToLower(role))
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("is_active = ?", strings.EqualFold(active, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar user")
	}
	for i := range users {
		users[i].Password = ""
	}

	return helper.JsonList(c, "OK", users,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/o/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "User tidak ditemukan")
	}
	u.Password = ""
	return helper.JsonOK(c, "OK", u)
}

// PATCH /api/o/users/:id/activate  dan  /deactivate
func (ctl *UserController) SetActive(active bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}
		res := ctl.DB.Model(&userModel.UserModel{}).
			Where("id = ?", id).
			Update("is_active", active)
		if res.Error != nil {
			return helper.JsonDBError(c, res.Error, "Gagal memperbarui user")
		}
		if res.RowsAffected == 0 {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
				"User tidak ditemukan")
		}
		msg := "User dinonaktifkan"
		if active {
			msg = "User diaktifkan"
		}
		return helper.JsonUpdated(c, msg, fiber.Map{"id": id, "is_active": active})
	}
}
