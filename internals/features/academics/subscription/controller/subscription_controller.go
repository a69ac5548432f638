// file: internals/features/academics/subscription/controller/subscription_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/academics/subscription/dto"
	subModel "institutku_backend/internals/features/academics/subscription/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

var validate = validator.New()

func (ctl *SubscriptionController) rowExists(query string, args ...any) (bool, error) {
	var exists bool
	err := ctl.DB.Raw(query, args...).Scan(&exists).Error
	return exists, err
}

// POST /api/a/:institute_id/subscriptions
func (ctl *SubscriptionController) Create(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}
	if err := req.ValidateTarget(); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	}

	// siswa harus aktif di institute ini
	ok, err := ctl.rowExists(
		`SELECT EXISTS(SELECT 1 FROM students
		  WHERE student_id = ? AND student_institute_id = ?
		    AND student_deleted_at IS NULL AND student_is_active = TRUE)`,
		req.SubscriptionStudentID, instituteID)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa siswa")
	}
	if !ok {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Siswa tidak ditemukan pada institute ini")
	}

	// target juga harus milik institute yang sama
	if req.SubscriptionCourseID != nil {
		ok, err = ctl.rowExists(
			`SELECT EXISTS(SELECT 1 FROM courses
			  WHERE course_id = ? AND course_institute_id = ?
			    AND course_deleted_at IS NULL AND course_is_active = TRUE)`,
			*req.SubscriptionCourseID, instituteID)
		if err != nil {
			return helper.JsonDBError(c, err, "Gagal memeriksa course")
		}
		if !ok {
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Course tidak ditemukan pada institute ini")
		}
	}
	if req.SubscriptionServiceID != nil {
		ok, err = ctl.rowExists(
			`SELECT EXISTS(SELECT 1 FROM services
			  WHERE service_id = ? AND service_institute_id = ?
			    AND service_deleted_at IS NULL AND service_is_active = TRUE)`,
			*req.SubscriptionServiceID, instituteID)
		if err != nil {
			return helper.JsonDBError(c, err, "Gagal memeriksa layanan")
		}
		if !ok {
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Layanan tidak ditemukan pada institute ini")
		}
	}

	m := req.ToModel(instituteID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat subscription")
	}
	return helper.JsonCreated(c, "Subscription berhasil dibuat", m)
}

// GET /api/a/:institute_id/subscriptions
func (ctl *SubscriptionController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&subModel.SubscriptionModel{}).
		Where("subscription_institute_id = ?", instituteID)
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		studentID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("subscription_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("subscription_status = ?", strings.ToLower(status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung subscription")
	}

	var rows []subModel.SubscriptionModel
	if err := q.Order("subscription_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar subscription")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/a/:institute_id/subscriptions/:id
func (ctl *SubscriptionController) Update(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m subModel.SubscriptionModel
	if err := ctl.DB.
		First(&m, "subscription_id = ? AND subscription_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Subscription tidak ditemukan")
	}
	req.ApplyToModel(&m)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui subscription")
	}
	return helper.JsonUpdated(c, "Subscription berhasil diperbarui", m)
}

// POST /api/a/:institute_id/subscriptions/:id/end
// Mengakhiri langganan (status ended + tanggal akhir hari ini).
func (ctl *SubscriptionController) End(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	res := ctl.DB.Model(&subModel.SubscriptionModel{}).
		Where("subscription_id = ? AND subscription_institute_id = ? AND subscription_status = 'active'",
			id, instituteID).
		Updates(map[string]any{
			"subscription_status":   subModel.StatusEnded,
			"subscription_ended_at": now,
		})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal mengakhiri subscription")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Subscription aktif tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Subscription diakhiri", fiber.Map{"subscription_id": id})
}
