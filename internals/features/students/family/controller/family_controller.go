// file: internals/features/students/family/controller/family_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/students/family/dto"
	fModel "institutku_backend/internals/features/students/family/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

var validate = validator.New()

// POST /api/a/:institute_id/families
func (ctl *FamilyController) Create(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	m := req.ToModel(instituteID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat keluarga")
	}
	return helper.JsonCreated(c, "Keluarga berhasil dibuat", m)
}

// GET /api/a/:institute_id/families
func (ctl *FamilyController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&fModel.FamilyModel{}).
		Where("family_institute_id = ?", instituteID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("family_name ILIKE ? OR family_guardian_name ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if c.Query("active") == "true" {
		q = q.Where("family_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung keluarga")
	}

	var rows []fModel.FamilyModel
	if err := q.Order("family_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar keluarga")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/families/:id
func (ctl *FamilyController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m fModel.FamilyModel
	if err := ctl.DB.
		First(&m, "family_id = ? AND family_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Keluarga tidak ditemukan")
	}

	// anggota: siswa dalam keluarga ini
	type memberRow struct {
		StudentID       uuid.UUID `gorm:"column:student_id" json:"student_id"`
		StudentCode     string    `gorm:"column:student_code" json:"student_code"`
		StudentFullName string    `gorm:"column:student_full_name" json:"student_full_name"`
		StudentIsActive bool      `gorm:"column:student_is_active" json:"student_is_active"`
	}
	members := []memberRow{}
	if err := ctl.DB.Raw(`
		SELECT student_id, student_code, student_full_name, student_is_active
		FROM students
		WHERE student_family_id = ? AND student_deleted_at IS NULL
		ORDER BY student_full_name ASC`, id).
		Scan(&members).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil anggota keluarga")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"family":  m,
		"members": members,
	})
}

// PUT /api/a/:institute_id/families/:id
func (ctl *FamilyController) Update(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m fModel.FamilyModel
	if err := ctl.DB.
		First(&m, "family_id = ? AND family_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Keluarga tidak ditemukan")
	}
	req.ApplyToModel(&m)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui keluarga")
	}
	return helper.JsonUpdated(c, "Keluarga berhasil diperbarui", m)
}

// DELETE /api/a/:institute_id/families/:id
// Ditolak selama masih ada siswa aktif yang menempel pada keluarga ini.
func (ctl *FamilyController) SoftDelete(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var activeStudents int64
	if err := ctl.DB.Table("students").
		Where("student_family_id = ? AND student_deleted_at IS NULL AND student_is_active = TRUE", id).
		Count(&activeStudents).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa siswa")
	}
	if activeStudents > 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT",
			"Keluarga masih memiliki siswa aktif")
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var m fModel.FamilyModel
	if err := tx.First(&m, "family_id = ? AND family_institute_id = ?", id, instituteID).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Keluarga tidak ditemukan")
	}
	if err := tx.Model(&m).Update("family_is_active", false).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menonaktifkan keluarga")
	}
	if err := tx.Delete(&m).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus keluarga")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal commit")
	}
	return helper.JsonDeleted(c, "Keluarga berhasil dihapus", fiber.Map{"family_id": id})
}
