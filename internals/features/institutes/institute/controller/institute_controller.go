// file: internals/features/institutes/institute/controller/institute_controller.go
package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/institutes/institute/dto"
	iModel "institutku_backend/internals/features/institutes/institute/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
	"institutku_backend/internals/modules"
)

type InstituteController struct {
	DB *gorm.DB
}

func NewInstituteController(db *gorm.DB) *InstituteController {
	return &InstituteController{DB: db}
}

var validate = validator.New()

/* ===================== OWNER CRUD ===================== */

// POST /api/o/institutes
func (ctl *InstituteController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	m := req.ToModel()

	// slug unik (case-insensitive, soft-delete aware)
	slug, err := helper.GenerateUniqueSlug(ctl.DB, helper.SlugOptions{
		Table:            "institutes",
		SlugColumn:       "institute_slug",
		SoftDeleteColumn: "institute_deleted_at",
		DefaultBase:      m.InstituteName,
	}, m.InstituteSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug")
	}
	m.InstituteSlug = slug

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat institute")
	}
	return helper.JsonCreated(c, "Institute berhasil dibuat", dto.FromModel(m))
}

// GET /api/o/institutes
func (ctl *InstituteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&iModel.InstituteModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("institute_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung institute")
	}

	var rows []iModel.InstituteModel
	if err := q.Order("institute_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar institute")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/o/institutes/:id
func (ctl *InstituteController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

// PUT /api/o/institutes/:id
func (ctl *InstituteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	req.ApplyToModel(&m)
	now := time.Now()
	m.InstituteUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui institute")
	}
	return helper.JsonUpdated(c, "Institute berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /api/o/institutes/:id (soft delete + nonaktif)
func (ctl *InstituteController) SoftDelete(c *fiber.Ctx) error {
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

	var m iModel.InstituteModel
	if err := tx.First(&m, "institute_id = ?", id).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	if err := tx.Model(&m).Update("institute_is_active", false).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menonaktifkan institute")
	}
	if err := tx.Delete(&m).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus institute")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal commit")
	}
	return helper.JsonDeleted(c, "Institute berhasil dihapus", fiber.Map{"institute_id": id})
}

/* ===================== TENANT PROFILE ===================== */

// GET /api/a/:institute_id/profile
func (ctl *InstituteController) GetProfile(c *fiber.Ctx) error {
	id, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

// PUT /api/a/:institute_id/profile
func (ctl *InstituteController) UpdateProfile(c *fiber.Ctx) error {
	id, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpdateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	req.ApplyToModel(&m)
	now := time.Now()
	m.InstituteUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui institute")
	}
	return helper.JsonUpdated(c, "Institute berhasil diperbarui", dto.FromModel(&m))
}

/* ===================== PUBLIC ===================== */

// GET /api/public/institutes/:slug
func (ctl *InstituteController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}
	var m iModel.InstituteModel
	if err := ctl.DB.
		Where("lower(institute_slug) = lower(?) AND institute_is_active = TRUE", slug).
		First(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

/* ===================== FEATURES (per-tenant) ===================== */

// GET /api/a/:institute_id/features
func (ctl *InstituteController) GetFeatures(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("institute_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "institute_id tidak valid")
	}
	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}

	overrides := map[string]bool{}
	if len(m.InstituteFeatures) > 0 {
		_ = json.Unmarshal(m.InstituteFeatures, &overrides)
	}

	// gabungan: status global registry + override tenant
	out := make([]fiber.Map, 0, len(modules.Catalog))
	for _, st := range modules.Default().List() {
		enabled := st.Enabled
		if ov, ok := overrides[st.Config.Name]; ok && st.Enabled && !st.Config.Core {
			enabled = ov
		}
		out = append(out, fiber.Map{
			"name":       st.Config.Name,
			"label":      st.Config.Label,
			"core":       st.Config.Core,
			"depends_on": st.Config.DependsOn,
			"enabled":    enabled,
		})
	}
	return helper.JsonOK(c, "OK", out)
}

// PATCH /api/a/:institute_id/features
func (ctl *InstituteController) PatchFeatures(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("institute_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "institute_id tidak valid")
	}
	var req dto.PatchFeaturesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req) == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Minimal satu modul harus dikirim")
	}

	reg := modules.Default()
	for name, enable := range req {
		if !modules.IsKnownModule(name) {
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Modul tidak dikenal: "+name)
		}
		st, _ := reg.Get(name)
		if st.Config.Core {
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Modul core tidak bisa diubah: "+name)
		}
		// mematikan modul yang masih punya dependent aktif tidak diizinkan
		if !enable && !reg.CanDisable(name) {
			return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT",
				"Modul "+name+" masih dipakai modul lain")
		}
	}

	var m iModel.InstituteModel
	if err := ctl.DB.First(&m, "institute_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Institute tidak ditemukan")
	}

	overrides := map[string]bool{}
	if len(m.InstituteFeatures) > 0 {
		_ = json.Unmarshal(m.InstituteFeatures, &overrides)
	}
	for name, enable := range req {
		overrides[strings.ToLower(name)] = enable
	}
	merged, err := json.Marshal(overrides)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal serialisasi features")
	}

	if err := ctl.DB.Model(&m).Update("institute_features", merged).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui features")
	}
	return helper.JsonUpdated(c, "Features berhasil diperbarui", overrides)
}
