// file: internals/features/institutes/institute_users/controller/institute_user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/institutes/institute_users/dto"
	iuModel "institutku_backend/internals/features/institutes/institute_users/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type InstituteUserController struct {
	DB *gorm.DB
}

func NewInstituteUserController(db *gorm.DB) *InstituteUserController {
	return &InstituteUserController{DB: db}
}

var validate = validator.New()

// POST /api/a/:institute_id/members
func (ctl *InstituteUserController) Grant(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GrantRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	// user harus ada dan aktif
	var exists bool
	if err := ctl.DB.Raw(
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ? AND is_active = TRUE)`, req.UserID).
		Scan(&exists).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa user")
	}
	if !exists {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"User tidak ditemukan atau nonaktif")
	}

	m := req.ToModel(instituteID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memberikan role")
	}
	return helper.JsonCreated(c, "Role berhasil diberikan", m)
}

// GET /api/a/:institute_id/members
func (ctl *InstituteUserController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	base := ctl.DB.Table("institute_users AS iu").
		Joins("JOIN users u ON u.id = iu.institute_user_user_id").
		Where("iu.institute_user_institute_id = ?", instituteID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		base = base.Where("iu.institute_user_role = ?", strings.ToLower(role))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung anggota")
	}

	var rows []dto.InstituteUserResponse
	if err := base.
		Select(`iu.institute_user_id,
		        iu.institute_user_institute_id AS institute_id,
		        iu.institute_user_user_id      AS user_id,
		        u.user_name, u.email,
		        iu.institute_user_role      AS role,
		        iu.institute_user_is_active AS is_active`).
		Order("u.user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil anggota")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/:institute_id/members/:id
func (ctl *InstituteUserController) Revoke(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.
		Where("institute_user_id = ? AND institute_user_institute_id = ?", id, instituteID).
		Delete(&iuModel.InstituteUserModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal mencabut role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Penugasan role tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Role berhasil dicabut", fiber.Map{"institute_user_id": id})
}
