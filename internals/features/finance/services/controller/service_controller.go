// file: internals/features/finance/services/controller/service_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/finance/services/dto"
	svcModel "institutku_backend/internals/features/finance/services/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

var validate = validator.New()

// POST /api/a/:institute_id/services
func (ctl *ServiceController) Create(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	m := req.ToModel(instituteID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat layanan")
	}
	return helper.JsonCreated(c, "Layanan berhasil dibuat", m)
}

// GET /api/a/:institute_id/services
func (ctl *ServiceController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&svcModel.ServiceModel{}).
		Where("service_institute_id = ?", instituteID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("service_name ILIKE ?", "%"+search+"%")
	}
	if c.Query("active") == "true" {
		q = q.Where("service_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung layanan")
	}

	var rows []svcModel.ServiceModel
	if err := q.Order("service_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar layanan")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/services/:id
func (ctl *ServiceController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m svcModel.ServiceModel
	if err := ctl.DB.
		First(&m, "service_id = ? AND service_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Layanan tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/:institute_id/services/:id
func (ctl *ServiceController) Update(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m svcModel.ServiceModel
	if err := ctl.DB.
		First(&m, "service_id = ? AND service_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Layanan tidak ditemukan")
	}
	req.ApplyToModel(&m)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui layanan")
	}
	return helper.JsonUpdated(c, "Layanan berhasil diperbarui", m)
}

// DELETE /api/a/:institute_id/services/:id
func (ctl *ServiceController) SoftDelete(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var activeSubs int64
	if err := ctl.DB.Table("subscriptions").
		Where("subscription_service_id = ? AND subscription_status = 'active'", id).
		Count(&activeSubs).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa subscription")
	}
	if activeSubs > 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT",
			"Layanan masih memiliki subscription aktif")
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Model(&svcModel.ServiceModel{}).
		Where("service_id = ? AND service_institute_id = ?", id, instituteID).
		Update("service_is_active", false).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menonaktifkan layanan")
	}
	if err := tx.
		Where("service_id = ? AND service_institute_id = ?", id, instituteID).
		Delete(&svcModel.ServiceModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus layanan")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal commit")
	}
	return helper.JsonDeleted(c, "Layanan berhasil dihapus", fiber.Map{"service_id": id})
}
