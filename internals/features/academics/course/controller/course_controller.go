// file: internals/features/academics/course/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/academics/course/dto"
	cModel "institutku_backend/internals/features/academics/course/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

// POST /api/a/:institute_id/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	m := req.ToModel(instituteID)

	// slug unik per institute
	slug, err := helper.GenerateUniqueSlug(ctl.DB, helper.SlugOptions{
		Table:            "courses",
		SlugColumn:       "course_slug",
		SoftDeleteColumn: "course_deleted_at",
		Filters:          map[string]any{"course_institute_id": instituteID},
		DefaultBase:      m.CourseName,
	}, m.CourseSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug")
	}
	m.CourseSlug = slug

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat course")
	}
	return helper.JsonCreated(c, "Course berhasil dibuat", m)
}

// GET /api/a/:institute_id/courses (juga dipakai portal user)
func (ctl *CourseController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&cModel.CourseModel{}).
		Where("course_institute_id = ?", instituteID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}
	if c.Query("active") == "true" {
		q = q.Where("course_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung course")
	}

	var rows []cModel.CourseModel
	if err := q.Order("course_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar course")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m cModel.CourseModel
	if err := ctl.DB.
		First(&m, "course_id = ? AND course_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Course tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/:institute_id/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m cModel.CourseModel
	if err := ctl.DB.
		First(&m, "course_id = ? AND course_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Course tidak ditemukan")
	}
	req.ApplyToModel(&m)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui course")
	}
	return helper.JsonUpdated(c, "Course berhasil diperbarui", m)
}

// DELETE /api/a/:institute_id/courses/:id
func (ctl *CourseController) SoftDelete(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// course dengan subscription aktif tidak boleh dihapus
	var activeSubs int64
	if err := ctl.DB.Table("subscriptions").
		Where("subscription_course_id = ? AND subscription_status = 'active'", id).
		Count(&activeSubs).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa subscription")
	}
	if activeSubs > 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT",
			"Course masih memiliki subscription aktif")
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Model(&cModel.CourseModel{}).
		Where("course_id = ? AND course_institute_id = ?", id, instituteID).
		Update("course_is_active", false).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menonaktifkan course")
	}
	if err := tx.
		Where("course_id = ? AND course_institute_id = ?", id, instituteID).
		Delete(&cModel.CourseModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus course")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal commit")
	}
	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": id})
}
