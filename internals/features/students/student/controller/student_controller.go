// file: internals/features/students/student/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/students/student/dto"
	sModel "institutku_backend/internals/features/students/student/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// familyExists memastikan keluarga ada, aktif, dan milik institute yang sama.
func (ctl *StudentController) familyExists(instituteID, familyID uuid.UUID) (bool, error) {
	var exists bool
	err := ctl.DB.Raw(
		`SELECT EXISTS(SELECT 1 FROM families
		  WHERE family_id = ? AND family_institute_id = ?
		    AND family_deleted_at IS NULL AND family_is_active = TRUE)`,
		familyID, instituteID).Scan(&exists).Error
	return exists, err
}

// POST /api/a/:institute_id/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	// siswa wajib menempel ke keluarga yang sudah ada
	ok, err := ctl.familyExists(instituteID, req.StudentFamilyID)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa keluarga")
	}
	if !ok {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Keluarga tidak ditemukan pada institute ini")
	}

	m := req.ToModel(instituteID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", m)
}

// GET /api/a/:institute_id/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&sModel.StudentModel{}).
		Where("student_institute_id = ?", instituteID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("student_full_name ILIKE ? OR student_code ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if fid := strings.TrimSpace(c.Query("family_id")); fid != "" {
		familyID, err := uuid.Parse(fid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "family_id tidak valid")
		}
		q = q.Where("student_family_id = ?", familyID)
	}
	if c.Query("active") == "true" {
		q = q.Where("student_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung siswa")
	}

	var rows []sModel.StudentModel
	if err := q.Order("student_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar siswa")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m sModel.StudentModel
	if err := ctl.DB.
		First(&m, "student_id = ? AND student_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Siswa tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/:institute_id/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	// pindah keluarga juga harus ke keluarga yang valid
	if req.StudentFamilyID != nil {
		ok, err := ctl.familyExists(instituteID, *req.StudentFamilyID)
		if err != nil {
			return helper.JsonDBError(c, err, "Gagal memeriksa keluarga")
		}
		if !ok {
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Keluarga tidak ditemukan pada institute ini")
		}
	}

	var m sModel.StudentModel
	if err := ctl.DB.
		First(&m, "student_id = ? AND student_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Siswa tidak ditemukan")
	}
	req.ApplyToModel(&m)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", m)
}

// DELETE /api/a/:institute_id/students/:id
// Idempotent: menghapus siswa yang sudah terhapus tetap 200.
func (ctl *StudentController) SoftDelete(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Model(&sModel.StudentModel{}).
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		Update("student_is_active", false).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menonaktifkan siswa")
	}
	if err := tx.
		Where("student_id = ? AND student_institute_id = ?", id, instituteID).
		Delete(&sModel.StudentModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus siswa")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal commit")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}

/* ===================== PORTAL ORANG TUA / SISWA ===================== */

// GET /api/u/:institute_id/my-children
// Anak-anak dari keluarga yang guardian-nya adalah user login.
func (ctl *StudentController) MyChildren(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []sModel.StudentModel
	if err := ctl.DB.
		Joins("JOIN families f ON f.family_id = students.student_family_id").
		Where(`students.student_institute_id = ?
		   AND f.family_guardian_user_id = ?
		   AND f.family_deleted_at IS NULL`, instituteID, userID).
		Order("student_full_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/u/:institute_id/my-profile
// Profil siswa milik user login (portal siswa).
func (ctl *StudentController) MyProfile(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m sModel.StudentModel
	if err := ctl.DB.
		First(&m, "student_institute_id = ? AND student_user_id = ?", instituteID, userID).Error; err != nil {
		return helper.JsonDBError(c, err, "Profil siswa tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", m)
}
